// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.lock")

	l, err := Acquire(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path)
	assert.False(t, l.AcquiredAt.IsZero())
	assert.FileExists(t, path)

	require.NoError(t, l.Release())
	assert.NoFileExists(t, path)
}

func TestAcquireFailsWhenHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.lock")

	l, err := Acquire(path)
	require.NoError(t, err)

	defer l.Release() //nolint:errcheck

	_, err = Acquire(path)
	assert.ErrorIs(t, err, ErrLockHeld)

	// The original holder's file must be untouched.
	assert.FileExists(t, path)
}

func TestReleaseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.lock")

	l, err := Acquire(path)
	require.NoError(t, err)

	require.NoError(t, l.Release())
	require.NoError(t, l.Release())
}

func TestAcquireWritesOwnerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.lock")

	l, err := Acquire(path)
	require.NoError(t, err)

	defer l.Release() //nolint:errcheck

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
