// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package orchestrator drives one batch run: acquire the single-instance
// lock, enumerate the job configurations, run the worker per unit under the
// fail-fast policy, finalize the output storage on success, release the
// lock, and send the operator notification.
package orchestrator

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/listcache/internal/config"
	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
	"github.com/matt-FFFFFF/listcache/internal/finalize"
	"github.com/matt-FFFFFF/listcache/internal/jobs"
	"github.com/matt-FFFFFF/listcache/internal/lockfile"
	"github.com/matt-FFFFFF/listcache/internal/notify"
	"github.com/matt-FFFFFF/listcache/internal/runbatch"
	"github.com/matt-FFFFFF/listcache/internal/signalbroker"
	"github.com/spf13/afero"
)

// Process exit codes. Any other non-zero code is the first failing unit's
// exit status.
const (
	// ExitCodeOK covers full success and the "already running" no-op.
	ExitCodeOK = 0
	// ExitCodeError is used when the batch could not be set up at all.
	ExitCodeError = 1
	// ExitCodeSignal is the distinguished code for a signal-driven abort.
	ExitCodeSignal = 255
)

// Controller orchestrates the batch. The zero value is not usable; populate
// Settings and Fs.
type Controller struct {
	Settings config.Settings
	Fs       afero.Fs

	// NewCommand builds the runnable for one configuration unit. When nil,
	// the external worker from Settings is used. Tests inject fakes here.
	NewCommand func(unit jobs.Unit) runbatch.Runnable

	// Notifier overrides the sender derived from Settings. Tests only.
	Notifier notify.Notifier

	// Exit terminates the process on a signal abort. Defaults to os.Exit.
	Exit func(code int)

	// SignalCh overrides the signal source. Tests only.
	SignalCh chan os.Signal
}

// Run executes one batch and returns the process exit code.
//
// If the lock is already held by another instance this is a silent no-op
// with exit code 0: no unit is processed and no notification is sent.
func (c *Controller) Run(ctx context.Context) int {
	logger := ctxlog.Logger(ctx)

	lock, err := lockfile.Acquire(c.Settings.LockPath)
	if err != nil {
		if errors.Is(err, lockfile.ErrLockHeld) {
			logger.Info("another instance is active, nothing to do",
				"lockPath", c.Settings.LockPath)

			return ExitCodeOK
		}

		logger.Error("failed to acquire lock", "lockPath", c.Settings.LockPath, "error", err)

		return ExitCodeError
	}

	// The lock must never survive a clean signal-based abort: the watchdog
	// releases it and terminates the process with the distinguished code
	// instead of the batch's computed status.
	sigCh := c.SignalCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
	}

	go signalbroker.Watch(ctx, sigCh, func(sig os.Signal) {
		logger.Warn("aborting on signal", "signal", sig.String())
		lock.Release() //nolint:errcheck
		c.exit(ExitCodeSignal)
	})

	defer func() {
		signalbroker.Stop(sigCh)
		close(sigCh)

		if err := lock.Release(); err != nil {
			logger.Error("failed to release lock", "error", err)
		}
	}()

	units, err := jobs.Enumerate(c.fs(), c.Settings.ConfigDir)
	if err != nil {
		logger.Error("failed to enumerate config units",
			"configDir", c.Settings.ConfigDir, "error", err)

		return ExitCodeError
	}

	batch := &runbatch.SerialBatch{Label: notify.Product}
	for unit := range units {
		batch.Commands = append(batch.Commands, c.newCommand(unit))
	}

	br := batch.Run(ctx)

	if br.Succeeded() {
		fin := &finalize.Finalizer{
			Fs:       c.fs(),
			OutDir:   c.Settings.OutDir,
			Hardlink: c.Settings.Hardlink,
		}

		if warn := fin.Finalize(ctx, br.CompletedAt); warn != nil {
			logger.Warn("finalize pass reported warnings", "warnings", warn.Error())
		}
	}

	// Release before notifying so the next scheduled run is never blocked
	// by a slow mail relay. The deferred release is a no-op after this.
	if err := lock.Release(); err != nil {
		logger.Error("failed to release lock", "error", err)
	}

	c.sendNotification(ctx, br)

	// The internal -1 marker (a unit that errored without an exit status)
	// must not reach os.Exit, where it would wrap to 255 and masquerade as
	// a signal abort.
	code := br.ExitCode()
	if code < 0 {
		code = ExitCodeError
	}

	return code
}

// sendNotification composes and sends the status message. It is best-effort:
// a delivery failure is logged and never alters the batch outcome.
func (c *Controller) sendNotification(ctx context.Context, br *runbatch.BatchResult) {
	if c.Settings.Recipient == "" {
		return
	}

	msg := notify.NewMessage(c.Settings.Recipient, br)

	if err := c.notifier().Send(msg); err != nil {
		ctxlog.Warn(ctx, "failed to send notification",
			"recipient", msg.Recipient, "error", err)
	}
}

func (c *Controller) newCommand(unit jobs.Unit) runbatch.Runnable {
	if c.NewCommand != nil {
		return c.NewCommand(unit)
	}

	return &runbatch.WorkerCommand{
		Label: unit.Name,
		Path:  c.Settings.Worker,
		Args:  WorkerArgs(unit, c.Settings.Debug, c.Settings.Download),
	}
}

// WorkerArgs builds the worker argument list for one unit.
func WorkerArgs(unit jobs.Unit, debug, download bool) []string {
	args := []string{"-C", unit.Path}

	if debug {
		args = append(args, "-D")
	}

	if download {
		args = append(args, "--download")
	}

	return args
}

func (c *Controller) notifier() notify.Notifier {
	if c.Notifier != nil {
		return c.Notifier
	}

	return &notify.SMTPNotifier{
		Addr:   c.Settings.SMTPAddr,
		Sender: c.Settings.Sender,
	}
}

func (c *Controller) fs() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}

	return c.Fs
}

func (c *Controller) exit(code int) {
	if c.Exit != nil {
		c.Exit(code)
		return
	}

	os.Exit(code)
}
