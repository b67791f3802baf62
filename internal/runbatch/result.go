// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import "time"

// Result represents the outcome of running a single command.
type Result struct {
	Label    string // Label of the command
	ExitCode int    // Exit code of the command
	Error    error  // Error, if any
}

// Ok reports whether the command succeeded.
func (r *Result) Ok() bool {
	return r != nil && r.ExitCode == 0 && r.Error == nil
}

// BatchResult is the aggregate outcome of one batch run. It is created once
// per run and must not be mutated after the batch loop ends.
type BatchResult struct {
	State       State     // Terminal state of the batch
	Results     []*Result // Results for the commands that ran, in order
	Failed      *Result   // The result that caused the failure, if any
	CompletedAt time.Time // When the batch loop ended, UTC
}

// Succeeded reports whether every command in the batch succeeded.
func (b *BatchResult) Succeeded() bool {
	return b.State == StateSucceeded
}

// ExitCode returns the process exit code for the batch: 0 on success,
// otherwise the failing command's exit code.
func (b *BatchResult) ExitCode() int {
	if b.Succeeded() {
		return 0
	}

	if b.Failed != nil && b.Failed.ExitCode != 0 {
		return b.Failed.ExitCode
	}

	return -1
}
