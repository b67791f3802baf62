// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jobs enumerates the per-job configuration units that the batch
// processes. A unit is a single .ini file in the configuration directory;
// the worker is run once per unit.
package jobs

import (
	"errors"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// ConfigSuffix is the filename suffix that identifies a configuration unit.
const ConfigSuffix = ".ini"

// ErrReadConfigDir is returned when the configuration directory cannot be read.
var ErrReadConfigDir = errors.New("could not read config directory")

// Unit is one job configuration. It is immutable for the duration of a run.
type Unit struct {
	Name string // Base filename of the unit.
	Path string // Full path to the configuration file.
}

// Enumerate lists the configuration units in dir, non-recursive, in
// lexicographic filename order. The returned sequence is restartable: it can
// be ranged over any number of times and yields the same units each time.
// An empty directory yields an empty sequence.
func Enumerate(fsys afero.Fs, dir string) (iter.Seq[Unit], error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrReadConfigDir, err)
	}

	units := make([]Unit, 0, len(infos))

	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ConfigSuffix) {
			continue
		}

		units = append(units, Unit{
			Name: info.Name(),
			Path: filepath.Join(dir, info.Name()),
		})
	}

	// afero.ReadDir sorts by filename, keep the guarantee explicit.
	slices.SortFunc(units, func(a, b Unit) int {
		return strings.Compare(a.Name, b.Name)
	})

	return slices.Values(units), nil
}
