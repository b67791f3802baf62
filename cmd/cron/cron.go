// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cron implements the resident schedule mode: the same batch as
// `run`, triggered by a cron expression. Overlapping triggers are already
// excluded by the run lock.
package cron

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/listcache/internal/config"
	"github.com/matt-FFFFFF/listcache/internal/ctxlog"
	"github.com/matt-FFFFFF/listcache/internal/orchestrator"
	"github.com/matt-FFFFFF/listcache/internal/signalbroker"
	"github.com/robfig/cron/v3"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	configFlag   = "config"
	scheduleFlag = "schedule"
)

// CronCmd keeps the process resident and runs the batch on a schedule.
var CronCmd = &cli.Command{
	Name:        "cron",
	Description: "Stay resident and run the batch on a cron schedule.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the settings YAML file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:     scheduleFlag,
			Aliases:  []string{"s"},
			Usage:    "Cron expression, e.g. \"0 3 * * *\"",
			Required: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load settings: %s", err.Error()), orchestrator.ExitCodeError)
	}

	scheduler := cron.New()

	_, err = scheduler.AddFunc(cmd.String(scheduleFlag), func() {
		controller := &orchestrator.Controller{Settings: settings}

		if code := controller.Run(ctx); code != 0 {
			ctxlog.Warn(ctx, "scheduled batch failed", "exitCode", code)
		}
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid schedule %q: %s", cmd.String(scheduleFlag), err.Error()),
			orchestrator.ExitCodeError)
	}

	ctxlog.Info(ctx, "scheduler started", "schedule", cmd.String(scheduleFlag))
	scheduler.Start()

	defer scheduler.Stop()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	select {
	case <-ctx.Done():
	case sig := <-sigCh:
		ctxlog.Info(ctx, "scheduler stopping", "signal", sig.String())
	}

	return nil
}
