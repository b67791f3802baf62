// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type fakeCmd struct {
	label    string
	exitCode int
	err      error
	runs     *int
}

func (f *fakeCmd) Run(_ context.Context) *Result {
	if f.runs != nil {
		*f.runs++
	}

	return &Result{
		Label:    f.label,
		ExitCode: f.exitCode,
		Error:    f.err,
	}
}

func (f *fakeCmd) GetLabel() string {
	return f.label
}

func TestSerialBatchRun_AllSuccess(t *testing.T) {
	defer goleak.VerifyNone(t)

	batch := &SerialBatch{
		Label: "batch1",
		Commands: []Runnable{
			&fakeCmd{label: "cmd1"},
			&fakeCmd{label: "cmd2"},
			&fakeCmd{label: "cmd3"},
		},
	}

	br := batch.Run(context.Background())
	assert.Equal(t, StateSucceeded, br.State)
	assert.True(t, br.Succeeded())
	assert.Equal(t, 0, br.ExitCode())
	assert.Nil(t, br.Failed)
	assert.Len(t, br.Results, 3)
	assert.False(t, br.CompletedAt.IsZero())
}

func TestSerialBatchRun_FailFast(t *testing.T) {
	defer goleak.VerifyNone(t)

	var thirdRuns int

	batch := &SerialBatch{
		Label: "batch2",
		Commands: []Runnable{
			&fakeCmd{label: "cmd1"},
			&fakeCmd{label: "cmd2", exitCode: 5},
			&fakeCmd{label: "cmd3", runs: &thirdRuns},
		},
	}

	br := batch.Run(context.Background())
	assert.Equal(t, StateFailed, br.State)
	assert.False(t, br.Succeeded())
	assert.Equal(t, 5, br.ExitCode())
	assert.Equal(t, "cmd2", br.Failed.Label)
	assert.Len(t, br.Results, 2)
	assert.Zero(t, thirdRuns, "commands after the failure must not run")
}

func TestSerialBatchRun_ErrorWithZeroExitCode(t *testing.T) {
	defer goleak.VerifyNone(t)

	batch := &SerialBatch{
		Label: "batch3",
		Commands: []Runnable{
			&fakeCmd{label: "cmd1", err: os.ErrPermission},
		},
	}

	br := batch.Run(context.Background())
	assert.Equal(t, StateFailed, br.State)
	assert.Equal(t, -1, br.ExitCode())
}

func TestSerialBatchRun_EmptyBatchSucceeds(t *testing.T) {
	defer goleak.VerifyNone(t)

	batch := &SerialBatch{Label: "empty"}

	br := batch.Run(context.Background())
	assert.Equal(t, StateSucceeded, br.State)
	assert.Equal(t, 0, br.ExitCode())
	assert.Empty(t, br.Results)
}

func TestSerialBatchRun_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	var runs int

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := &SerialBatch{
		Label: "batch4",
		Commands: []Runnable{
			&fakeCmd{label: "cmd1", runs: &runs},
		},
	}

	br := batch.Run(ctx)
	assert.Equal(t, StateFailed, br.State)
	assert.Zero(t, runs)
	assert.ErrorIs(t, br.Failed.Error, context.Canceled)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "succeeded", StateSucceeded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(42).String())
}
