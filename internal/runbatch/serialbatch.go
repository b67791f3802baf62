// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
)

// SerialBatch runs a collection of commands one after another and stops at
// the first failure. The sequential order is what serializes the commands'
// writes to shared output storage; nothing here may run concurrently.
type SerialBatch struct {
	Label    string
	Commands []Runnable
}

// Run executes the batch. On the first non-zero result the loop stops
// immediately and that result becomes the batch's failure cause. An empty
// batch succeeds.
func (b *SerialBatch) Run(ctx context.Context) *BatchResult {
	logger := ctxlog.Logger(ctx).With("batch", b.Label)

	br := &BatchResult{State: StatePending}
	br.State = StateRunning

	for _, cmd := range b.Commands {
		select {
		case <-ctx.Done():
			br.State = StateFailed
			br.Failed = &Result{
				Label:    cmd.GetLabel(),
				ExitCode: -1,
				Error:    ctx.Err(),
			}
		default:
			logger.Info("running command", "label", cmd.GetLabel())

			res := cmd.Run(ctx)
			br.Results = append(br.Results, res)

			if res.Ok() {
				continue
			}

			logger.Error("command failed, stopping batch",
				"label", res.Label, "exitCode", res.ExitCode, "error", res.Error)

			br.State = StateFailed
			br.Failed = res
		}

		break
	}

	if br.State == StateRunning {
		br.State = StateSucceeded
	}

	br.CompletedAt = time.Now().UTC()

	logger.Info("batch finished", "state", br.State.String(), "commands", len(br.Results))

	return br
}

// GetLabel returns the label of the batch.
func (b *SerialBatch) GetLabel() string {
	if b.Label == "" {
		return "Batch"
	}

	return b.Label
}
