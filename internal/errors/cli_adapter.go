package errors

import (
	"fmt"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the graphdot CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if gde, ok := err.(*GraphDotError); ok {
		return a.exitCodeFromGraphDot(gde)
	}

	return 1
}

// exitCodeFromGraphDot maps GraphDotError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromGraphDot(err *GraphDotError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryRender, CategoryFileSystem:
		return 11 // Export error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if gde, ok := err.(*GraphDotError); ok {
		return a.formatGraphDot(gde)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatGraphDot formats a GraphDotError for display. Verbose mode shows the
// full classified chain; otherwise only the message and cause.
func (a *CLIErrorAdapter) formatGraphDot(err *GraphDotError) string {
	if a.verbose {
		return err.Error()
	}

	if err.Cause != nil {
		return fmt.Sprintf("Error: %s: %v", err.Message, err.Cause)
	}
	return fmt.Sprintf("Error: %s", err.Message)
}

// LogError logs an error with its structured context at a level matching the
// severity.
func (a *CLIErrorAdapter) LogError(err error) {
	if err == nil {
		return
	}

	gde, ok := err.(*GraphDotError)
	if !ok {
		a.logger.Error("command failed", "error", err)
		return
	}

	attrs := []any{"category", gde.Category, "error", gde.Error()}
	for k, v := range gde.Context {
		attrs = append(attrs, k, v)
	}

	switch gde.Severity {
	case SeverityWarning:
		a.logger.Warn(gde.Message, attrs...)
	default:
		a.logger.Error(gde.Message, attrs...)
	}
}
