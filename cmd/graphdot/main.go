package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/graphdot/internal/config"
	gderrors "git.home.luguber.info/inful/graphdot/internal/errors"
	"git.home.luguber.info/inful/graphdot/internal/render"
	"git.home.luguber.info/inful/graphdot/internal/watch"
)

var CLI struct {
	Graph   string `short:"g" help:"Graph definition file path" default:"graph.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Render struct {
		Format string `short:"f" help:"Output format: text, mermaid, dot, json" default:"dot" enum:"text,mermaid,dot,json"`
		Output string `short:"o" help:"Output file path (optional, prints to stdout if not specified)"`
	} `cmd:"" help:"Render the graph definition in the chosen format"`

	Formats struct{} `cmd:"" help:"List available output formats and exit"`

	Init struct {
		Force bool `help:"Overwrite existing definition file"`
	} `cmd:"" help:"Write a starter graph definition"`

	Watch struct {
		Format string `short:"f" help:"Output format: text, mermaid, dot, json" default:"dot" enum:"text,mermaid,dot,json"`
		Output string `short:"o" required:"" help:"Output file path, rewritten on every change"`
	} `cmd:"" help:"Re-render to a file whenever the definition changes"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	var err error
	switch ctx.Command() {
	case "render":
		err = runRender(CLI.Graph, render.Format(CLI.Render.Format), CLI.Render.Output)
	case "formats":
		err = runFormats()
	case "init":
		err = runInit(CLI.Graph, CLI.Init.Force)
	case "watch":
		err = runWatch(CLI.Graph, render.Format(CLI.Watch.Format), CLI.Watch.Output)
	}

	if err != nil {
		adapter := gderrors.NewCLIErrorAdapter(CLI.Verbose, logger)
		adapter.LogError(err)
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}

// runRender loads the definition, renders it and writes the result to the
// output file or stdout.
func runRender(defPath string, format render.Format, output string) error {
	out, err := renderDefinition(defPath, format)
	if err != nil {
		return err
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
			return gderrors.NewFileSystemError("failed to write output file", err)
		}
		slog.Info("Graph rendered", "file", output, "format", format)
		return nil
	}

	fmt.Print(out)
	return nil
}

// renderDefinition is the shared load-build-render path used by both the
// render and watch commands.
func renderDefinition(defPath string, format render.Format) (string, error) {
	def, err := config.Load(defPath)
	if err != nil {
		return "", err
	}

	g, err := def.Build()
	if err != nil {
		return "", err
	}

	out, err := render.Render(g, format)
	if err != nil {
		return "", gderrors.NewRenderError("failed to render graph", err)
	}
	return out, nil
}

func runFormats() error {
	fmt.Println("Available output formats:")
	fmt.Println()
	for _, format := range render.SupportedFormats() {
		fmt.Printf("  %-10s %s\n", format, render.FormatDescription(format))
	}
	fmt.Println()
	fmt.Println("Usage examples:")
	fmt.Println("  graphdot render                       # DOT format to stdout")
	fmt.Println("  graphdot render -f mermaid            # Mermaid diagram to stdout")
	fmt.Println("  graphdot render -f dot -o graph.dot   # DOT format to file")
	return nil
}

func runInit(defPath string, force bool) error {
	slog.Info("Writing starter definition", "path", defPath, "force", force)
	return config.Init(defPath, force)
}

// runWatch renders once, then keeps re-rendering on definition changes until
// interrupted.
func runWatch(defPath string, format render.Format, output string) error {
	if err := runRender(defPath, format, output); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, err := watch.New(defPath, func(_ context.Context, path string) error {
		return runRender(path, format, output)
	})
	if err != nil {
		return gderrors.Wrap(err, gderrors.CategoryInternal, gderrors.SeverityFatal, "failed to create watcher")
	}

	if err := w.Start(ctx); err != nil {
		return gderrors.Wrap(err, gderrors.CategoryInternal, gderrors.SeverityFatal, "failed to start watcher")
	}
	defer w.Stop()

	slog.Info("Watching for changes, press Ctrl+C to stop")
	<-ctx.Done()

	slog.Info("Shutdown signal received, stopping watcher")
	return nil
}
