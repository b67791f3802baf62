// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package finalize runs the post-success pass over the output storage root:
// it stamps the completion marker, relabels the tree so the web server can
// read it, and optionally hardlinks identical files to save space.
//
// Everything here is best-effort. Failures are aggregated and reported to
// the operator but never flip a successful batch to a failure.
package finalize

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
	"github.com/matt-FFFFFF/listcache/internal/runbatch"
	"github.com/spf13/afero"
)

// MarkerName is the filename of the completion marker written into the
// output storage root.
const MarkerName = "timestamp.txt"

// TimeFormat is the canonical format of the completion timestamp: RFC 3339
// in UTC. The same value appears in the marker and the notification subject.
const TimeFormat = time.RFC3339

// relabelCmd restores the SELinux context of served content. restorecon
// defers to local policy rather than hardcoding a type.
const relabelCmd = "restorecon"

var (
	// ErrWriteMarker is returned when the completion marker cannot be written.
	ErrWriteMarker = errors.New("could not write completion marker")
	// ErrRelabelUnavailable is returned when the relabel command is not on PATH.
	ErrRelabelUnavailable = errors.New("relabel command not found, skipping relabel pass")
	// ErrRelabel is returned when the relabel pass fails.
	ErrRelabel = errors.New("relabel pass failed")
	// ErrDedup is returned when the hardlink dedup pass fails.
	ErrDedup = errors.New("hardlink dedup pass failed")
)

// Finalizer stamps and optimizes the output storage root after a fully
// successful batch.
type Finalizer struct {
	Fs       afero.Fs // Filesystem the marker is written to.
	OutDir   string   // Output storage root.
	Hardlink bool     // Enables the dedup pass.
}

// Finalize runs the full pass. The returned error aggregates warnings only;
// the caller logs it and must not let it affect the batch outcome.
func (f *Finalizer) Finalize(ctx context.Context, completedAt time.Time) error {
	logger := ctxlog.Logger(ctx)

	var warns *multierror.Error

	if err := f.writeMarker(completedAt); err != nil {
		warns = multierror.Append(warns, err)
	} else {
		logger.Info("completion marker written",
			"path", filepath.Join(f.OutDir, MarkerName),
			"timestamp", completedAt.UTC().Format(TimeFormat))
	}

	if err := f.relabel(ctx); err != nil {
		warns = multierror.Append(warns, err)
	}

	if f.Hardlink {
		linked, err := DedupHardlinks(f.OutDir)
		if err != nil {
			warns = multierror.Append(warns, errors.Join(ErrDedup, err))
		}

		logger.Info("hardlink dedup pass finished", "linked", linked)
	}

	return warns.ErrorOrNil()
}

// writeMarker stamps the completion timestamp into the output root.
func (f *Finalizer) writeMarker(completedAt time.Time) error {
	path := filepath.Join(f.OutDir, MarkerName)
	data := []byte(completedAt.UTC().Format(TimeFormat) + "\n")

	if err := afero.WriteFile(f.Fs, path, data, 0o644); err != nil {
		return errors.Join(ErrWriteMarker, err)
	}

	return nil
}

// relabel runs the recursive security-label pass over the output root.
func (f *Finalizer) relabel(ctx context.Context) error {
	path, err := exec.LookPath(relabelCmd)
	if err != nil {
		return ErrRelabelUnavailable
	}

	cmd := &runbatch.WorkerCommand{
		Label: relabelCmd,
		Path:  path,
		Args:  []string{"-R", f.OutDir},
	}

	if res := cmd.Run(ctx); !res.Ok() {
		return errors.Join(ErrRelabel, res.Error)
	}

	return nil
}
