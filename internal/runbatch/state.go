// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

// State is the lifecycle state of a batch run.
type State int

const (
	// StatePending means the batch has not started yet.
	StatePending State = iota
	// StateRunning means the batch loop is in progress.
	StateRunning
	// StateSucceeded means every command ran and none failed. A batch with
	// zero commands is trivially successful.
	StateSucceeded
	// StateFailed means a command failed and the remaining commands were
	// not run.
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}
