// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/listcache/cmd/cron"
	"github.com/matt-FFFFFF/listcache/cmd/run"
	"github.com/matt-FFFFFF/listcache/cmd/show"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		cron.CronCmd,
		show.ShowCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "listcache",
	Description: `Listcache is the batch orchestrator that regenerates cached package-list
data sets. It runs the external worker once per job configuration under a
fail-fast policy, guarded by a single-instance lock, then stamps and
optimizes the output storage and mails a one-line OK/NG status to the
configured operator address.`,
	Usage:     "listcache run /etc/listcache.d",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
