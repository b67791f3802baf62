// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show implements the inspection commands: the enumerated
// configuration units and the effective settings.
package show

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/listcache/internal/config"
	"github.com/matt-FFFFFF/listcache/internal/jobs"
	"github.com/matt-FFFFFF/listcache/internal/orchestrator"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	configDirArg = "configdir"
	configFlag   = "config"
)

// ShowCmd groups the inspection subcommands.
var ShowCmd = &cli.Command{
	Name:        "show",
	Description: "Inspect the configuration without running anything.",
	Commands: []*cli.Command{
		unitsCmd,
		settingsCmd,
	},
}

var unitsCmd = &cli.Command{
	Name:        "units",
	Description: "List the configuration units in batch order.",
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
	},
	Action: unitsAction,
}

var settingsCmd = &cli.Command{
	Name:        "config",
	Description: "Print the effective settings as YAML.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the settings YAML file",
			TakesFile: true,
		},
	},
	Action: settingsAction,
}

func unitsAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load settings: %s", err.Error()), orchestrator.ExitCodeError)
	}

	if dir := cmd.StringArg(configDirArg); dir != "" {
		settings.ConfigDir = dir
	}

	units, err := jobs.Enumerate(afero.NewOsFs(), settings.ConfigDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to enumerate config units: %s", err.Error()),
			orchestrator.ExitCodeError)
	}

	for unit := range units {
		fmt.Fprintln(cmd.Writer, unit.Name) //nolint:errcheck
	}

	return nil
}

func settingsAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load settings: %s", err.Error()), orchestrator.ExitCodeError)
	}

	b, err := yaml.Marshal(settings)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to marshal settings: %s", err.Error()),
			orchestrator.ExitCodeError)
	}

	fmt.Fprint(cmd.Writer, string(b)) //nolint:errcheck

	return nil
}
