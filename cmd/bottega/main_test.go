package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writePost(t *testing.T, dir, locale, slug, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, locale), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, locale, slug+".md"), []byte(body), 0o644))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bottega dev\n", out)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "it", "ok", "---\ntitle: Ok\ndate: 2024-01-01\n---\nbody\n")

	out, err := execute(t, "check", "--content-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	writePost(t, dir, "en", "bad", "---\ntitle: Bad\n---\nbody\n")
	writePost(t, dir, "en", "worse", "no header")
	_, err = execute(t, "check", "--content-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 malformed post(s)")
}

func TestExportCommand(t *testing.T) {
	dir, out := t.TempDir(), t.TempDir()
	writePost(t, dir, "it", "a", "---\ntitle: A\ndate: 2024-01-01\n---\nbody\n")

	_, err := execute(t, "export", "--content-dir", dir, "--out", out)
	require.NoError(t, err)
	for _, name := range []string{"sitemap.xml", "robots.txt", "llms.txt", "llms.json", "it/feed.xml", "en/feed.xml"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
}

func TestNewPostCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "new-post", "Il riccio", "--content-dir", dir, "--date", "2025-02-03", "--locale", "it")
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(dir, "it", "il-riccio.md"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "date: 2025-02-03")

	_, err = execute(t, "new-post", "Il riccio", "--content-dir", dir, "--date", "2025-02-03", "--locale", "it")
	assert.Error(t, err, "existing posts are not overwritten")

	_, err = execute(t, "new-post", "Il riccio", "--content-dir", dir, "--locale", "fr")
	assert.Error(t, err)
}

func TestWatchDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, []string{dir}, 50*time.Millisecond, func() { calls <- struct{}{} })
	}()
	time.Sleep(200 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte{byte('a' + i)}, 0o644))
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not fire after a change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchRunsCallsOneAtATime(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var running, overlaps, calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, []string{dir}, 20*time.Millisecond, func() {
			if running.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(150 * time.Millisecond)
			running.Add(-1)
			calls.Add(1)
		})
	}()
	time.Sleep(200 * time.Millisecond)

	for i := 0; i < 4; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte{byte('a' + i)}, 0o644))
		time.Sleep(60 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 20*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Zero(t, overlaps.Load())
}
