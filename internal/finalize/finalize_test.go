// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package finalize

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarker(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/var/lib/listcache", 0o755))

	at := time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC)
	f := &Finalizer{Fs: fsys, OutDir: "/var/lib/listcache"}

	require.NoError(t, f.writeMarker(at))

	b, err := afero.ReadFile(fsys, "/var/lib/listcache/timestamp.txt")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T03:00:00Z\n", string(b))
}

func TestWriteMarkerNormalizesToUTC(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/out", 0o755))

	jst := time.FixedZone("JST", 9*60*60)
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, jst)

	f := &Finalizer{Fs: fsys, OutDir: "/out"}
	require.NoError(t, f.writeMarker(at))

	b, err := afero.ReadFile(fsys, "/out/timestamp.txt")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T03:00:00Z\n", string(b))
}

func TestFinalizeWarningsAreNotFatal(t *testing.T) {
	// Read-only filesystem: the marker write fails, the relabel command is
	// unlikely to exist in the test environment. Finalize must return the
	// warnings without panicking; the caller decides they are non-fatal.
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	f := &Finalizer{Fs: fsys, OutDir: "/out"}

	err := f.Finalize(context.Background(), time.Now())
	assert.Error(t, err)
	assert.ErrorContains(t, err, "completion marker")
}
