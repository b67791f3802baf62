// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
)

var _ Runnable = (*WorkerCommand)(nil)

// ErrCouldNotStartProcess is returned when the process could not be started.
var ErrCouldNotStartProcess = errors.New("could not start process")

// WorkerCommand runs the external worker as a subprocess and captures its
// exit status. The worker's output is passed through untouched; the batch
// never interprets it.
type WorkerCommand struct {
	Label  string            // Label for the command, usually the unit name.
	Path   string            // The command to run (name or full path).
	Args   []string          // Arguments to the command.
	Env    map[string]string // Extra environment variables for the worker.
	Stdout io.Writer         // Defaults to os.Stdout.
	Stderr io.Writer         // Defaults to os.Stderr.
}

// Run implements the Runnable interface for WorkerCommand. The call blocks
// until the worker exits.
func (c *WorkerCommand) Run(ctx context.Context) *Result {
	logger := ctxlog.Logger(ctx).
		With("runnableType", "WorkerCommand").
		With("label", c.Label)

	logger.Debug("command info", "path", c.Path, "args", c.Args)

	res := &Result{
		Label:    c.Label,
		ExitCode: 0,
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)

	cmd.Stdout = c.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}

	cmd.Stderr = c.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	env := os.Environ()
	for k, v := range c.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	cmd.Env = env

	err := cmd.Run()
	if err == nil {
		logger.Debug("process finished", "exitCode", 0)
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		logger.Debug("process finished", "exitCode", res.ExitCode)

		return res
	}

	res.ExitCode = -1
	res.Error = errors.Join(ErrCouldNotStartProcess, err)

	return res
}

// GetLabel returns the label of the command.
func (c *WorkerCommand) GetLabel() string {
	if c.Label == "" {
		return "Command"
	}

	return c.Label
}
