package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_TriggersRenderOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - id: a\n"), 0o644))

	var calls atomic.Int32
	rendered := make(chan string, 8)

	w, err := New(path, func(_ context.Context, p string) error {
		calls.Add(1)
		rendered <- p
		return nil
	})
	require.NoError(t, err)
	w.SetDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - id: b\n"), 0o644))

	select {
	case p := <-rendered:
		require.Equal(t, p, w.path)
	case <-time.After(5 * time.Second):
		t.Fatal("render callback never fired")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var calls atomic.Int32
	w, err := New(path, func(context.Context, string) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	w.SetDebounce(200 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// Burst of writes well inside the debounce window.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	// Wait out the debounce window plus slack.
	time.Sleep(600 * time.Millisecond)
	require.LessOrEqual(t, calls.Load(), int32(2), "burst should coalesce into at most a couple of renders")
	require.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var calls atomic.Int32
	w, err := New(path, func(context.Context, string) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	w.SetDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)

	require.Zero(t, calls.Load())
}

func TestWatcher_StopClosesCleanly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w, err := New(path, func(context.Context, string) error { return nil })
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
}
