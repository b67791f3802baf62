// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
)

// Watch monitors the signal channel and invokes onSignal for the first
// termination signal received. It returns when the channel is closed or a
// signal has been handled.
func Watch(ctx context.Context, sigCh chan os.Signal, onSignal func(os.Signal)) {
	sig, ok := <-sigCh
	if !ok {
		return
	}

	ctxlog.Logger(ctx).Info("watchdog", "detail", "received termination signal", "signal", sig.String())
	onSignal(sig)
}
