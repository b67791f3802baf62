// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the command that executes one batch.
package run

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/listcache/internal/color"
	"github.com/matt-FFFFFF/listcache/internal/config"
	"github.com/matt-FFFFFF/listcache/internal/notify"
	"github.com/matt-FFFFFF/listcache/internal/orchestrator"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	configDirArg = "configdir"
	configFlag   = "config"
	debugFlag    = "debug"
	downloadFlag = "download"
)

// RunCmd runs one batch: lock, iterate units, fail fast, finalize, notify.
var RunCmd = &cli.Command{
	Name:        "run",
	Description: "Run the batch once over the configuration directory.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      configDirArg,
			UsageText: "[CONFIGDIR]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the settings YAML file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  debugFlag,
			Usage: "Forward the debug flag to the worker",
		},
		&cli.BoolFlag{
			Name:  downloadFlag,
			Usage: "Forward the download flag to the worker",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load settings: %s", err.Error()), orchestrator.ExitCodeError)
	}

	if dir := cmd.StringArg(configDirArg); dir != "" {
		settings.ConfigDir = dir
	}

	if cmd.Bool(debugFlag) {
		settings.Debug = true
	}

	if cmd.Bool(downloadFlag) {
		settings.Download = true
	}

	controller := &orchestrator.Controller{Settings: settings}

	code := controller.Run(ctx)

	fmt.Fprintln(cmd.Writer, Summary(code)) //nolint:errcheck

	if code != 0 {
		return cli.Exit("", code)
	}

	return nil
}

// Summary formats the end-of-run status line.
func Summary(code int) string {
	if code == 0 {
		return fmt.Sprintf("%s %s", notify.Product, color.Colorize(notify.StatusOK, color.Bold, color.FgGreen))
	}

	return fmt.Sprintf("%s %s (exit code %d)",
		notify.Product, color.Colorize(notify.StatusNG, color.Bold, color.FgRed), code)
}
