// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/listcache/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWorker creates a shell script that records its arguments and fails
// for any config path containing "fail".
func writeWorker(t *testing.T, dir, logPath string) string {
	t.Helper()

	script := fmt.Sprintf(`#!/bin/sh
echo "$@" >> %q
case "$2" in
*fail*) exit 7 ;;
esac
exit 0
`, logPath)

	path := filepath.Join(dir, "worker.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func newRealController(t *testing.T, unitNames ...string) (*Controller, string, string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("worker script requires a POSIX shell")
	}

	root := t.TempDir()
	confDir := filepath.Join(root, "conf")
	outDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	for _, n := range unitNames {
		require.NoError(t, os.WriteFile(filepath.Join(confDir, n), []byte("[main]\n"), 0o644))
	}

	logPath := filepath.Join(root, "worker.log")

	s := config.Default()
	s.Worker = writeWorker(t, root, logPath)
	s.ConfigDir = confDir
	s.OutDir = outDir
	s.LockPath = filepath.Join(root, "listcache.lock")

	return &Controller{Settings: s, Fs: afero.NewOsFs()}, outDir, logPath
}

func TestRunInvokesWorkerPerUnit(t *testing.T) {
	c, outDir, logPath := newRealController(t, "b.ini", "a.ini")

	code := c.Run(context.Background())
	assert.Equal(t, ExitCodeOK, code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)

	// Lexicographic unit order, config path forwarded with -C.
	assert.Contains(t, lines[0], "-C ")
	assert.Contains(t, lines[0], "a.ini")
	assert.Contains(t, lines[1], "b.ini")

	assert.FileExists(t, filepath.Join(outDir, "timestamp.txt"))
}

func TestRunWorkerFailurePropagatesExitCode(t *testing.T) {
	c, outDir, logPath := newRealController(t, "a.ini", "b-fail.ini", "c.ini")

	code := c.Run(context.Background())
	assert.Equal(t, 7, code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	assert.Len(t, lines, 2, "the unit after the failure must not run")

	assert.NoFileExists(t, filepath.Join(outDir, "timestamp.txt"))
	assert.NoFileExists(t, c.Settings.LockPath)
}

func TestRunForwardsDebugAndDownloadFlags(t *testing.T) {
	c, _, logPath := newRealController(t, "a.ini")
	c.Settings.Debug = true
	c.Settings.Download = true

	code := c.Run(context.Background())
	assert.Equal(t, ExitCodeOK, code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "-D")
	assert.Contains(t, string(b), "--download")
}
