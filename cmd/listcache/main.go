// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the listcache command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/listcache/cmd"
	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	// Signal handling lives with the batch controller, which must release
	// the run lock before terminating. Registering another handler here
	// would race with it.
	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}

	os.Exit(0)
}
