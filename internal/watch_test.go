package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherReportsWrites(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "cases.bexp")
	require.NoError(t, os.WriteFile(target, []byte("a and b\n"), 0o644))

	changed := make(chan string, 16)
	w, err := NewWatcher(nil,
		func(p string) bool { return strings.HasSuffix(p, ".bexp") },
		func(p string) { changed <- p },
	)
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond

	require.NoError(t, w.Add(dir))
	w.Start(context.Background())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("a or b\n"), 0o644))

	select {
	case p := <-changed:
		assert.Equal(t, target, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Close())
	assert.Error(t, w.Close())
}

func TestWatcherStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	w, err := NewWatcher(nil, nil, func(string) {})
	require.NoError(t, err)
	require.NoError(t, w.Add(t.TempDir()))

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	require.NoError(t, w.Close())
}

func TestWatcherAddMissingPath(t *testing.T) {
	w, err := NewWatcher(nil, nil, func(string) {})
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "missing")))
}
