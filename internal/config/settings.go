// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the orchestrator settings: where the job
// configurations live, where the output storage root is, how the worker is
// invoked, and whether notification and the hardlink pass are enabled.
//
// Settings are read from an optional YAML file and can be overridden by
// LISTCACHE_* environment variables; command line flags win over both.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// EnvPrefix is the prefix for all settings environment variables.
const EnvPrefix = "LISTCACHE_"

var (
	// ErrReadSettings is returned when the settings file cannot be read.
	ErrReadSettings = errors.New("could not read settings file")
	// ErrParseSettings is returned when the settings file cannot be parsed.
	ErrParseSettings = errors.New("could not parse settings file")
)

// Settings is the full orchestrator configuration.
type Settings struct {
	// Worker is the external worker executable run once per config unit.
	Worker string `yaml:"worker"`
	// ConfigDir is the directory holding the per-job .ini configurations.
	ConfigDir string `yaml:"config_dir"`
	// OutDir is the output storage root the workers write into.
	OutDir string `yaml:"out_dir"`
	// LockPath is the well-known path of the single-instance lock file.
	LockPath string `yaml:"lock_path"`
	// Recipient enables notification when non-empty.
	Recipient string `yaml:"recipient"`
	// SMTPAddr is the host:port of the mail relay.
	SMTPAddr string `yaml:"smtp_addr"`
	// Sender is the envelope sender for notifications.
	Sender string `yaml:"sender"`
	// Hardlink enables the dedup pass over OutDir after a successful batch.
	Hardlink bool `yaml:"hardlink"`
	// Debug is forwarded to the worker as its debug flag.
	Debug bool `yaml:"debug"`
	// Download is forwarded to the worker as its download flag.
	Download bool `yaml:"download"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Worker:    "yum_makelistcache",
		ConfigDir: "/etc/listcache.d",
		OutDir:    "/var/lib/listcache",
		LockPath:  "/var/run/listcache.lock",
		SMTPAddr:  "localhost:25",
		Sender:    "listcache@localhost",
	}
}

// Load reads settings from the YAML file at path, merged over the defaults
// and under the environment. An empty path skips the file entirely.
func Load(fsys afero.Fs, path string) (Settings, error) {
	s := Default()

	if path != "" {
		b, err := afero.ReadFile(fsys, path)
		if err != nil {
			return s, errors.Join(ErrReadSettings, err)
		}

		if err := yaml.Unmarshal(b, &s); err != nil {
			return s, errors.Join(ErrParseSettings, err)
		}
	}

	s.applyEnv()

	return s, nil
}

func (s *Settings) applyEnv() {
	envString(&s.Worker, "WORKER")
	envString(&s.ConfigDir, "CONFIG_DIR")
	envString(&s.OutDir, "OUT_DIR")
	envString(&s.LockPath, "LOCK_PATH")
	envString(&s.Recipient, "RECIPIENT")
	envString(&s.SMTPAddr, "SMTP_ADDR")
	envString(&s.Sender, "SENDER")
	envBool(&s.Hardlink, "HARDLINK")
	envBool(&s.Debug, "DEBUG")
	envBool(&s.Download, "DOWNLOAD")
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		*dst = v
	}
}

func envBool(dst *bool, key string) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return
	}

	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
