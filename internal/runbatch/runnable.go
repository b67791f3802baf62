// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import "context"

// Runnable is an executable job: something that can be run once and reports
// an exit status. It keeps the batch decoupled from what the job does
// internally.
type Runnable interface {
	// Run executes the command and returns its result.
	Run(context.Context) *Result
	// GetLabel returns the label or description of the command.
	GetLabel() string
}
