// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the uibench configuration from a YAML file,
// the environment and an optional .env file.
//
// Every key can be set in the environment with the UIBENCH_ prefix,
// dots replaced by underscores: prefs.dsn is UIBENCH_PREFS_DSN.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/uibench/resultview/benchurl"
)

// Config is the complete viewer configuration.
type Config struct {
	// Addr is the address the viewer listens on.
	Addr string `mapstructure:"addr"`

	Log   Log   `mapstructure:"log"`
	Prefs Prefs `mapstructure:"prefs"`
	CORS  CORS  `mapstructure:"cors"`

	// Bench are the default benchmark options.
	Bench benchurl.Options `mapstructure:"bench"`

	// Contestants replaces the built-in benchmark catalog if set.
	Contestants []benchurl.Contestant `mapstructure:"contestants"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Prefs selects the preferences database. Driver "none" disables
// preferences.
type Prefs struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// CORS lists the other origins allowed to call the viewer. Empty
// disables CORS.
type CORS struct {
	Origins []string `mapstructure:"origins"`
}

// PrefsDisabled is the prefs driver that turns preferences off.
const PrefsDisabled = "none"

// Load reads the configuration. If cfgFile is empty, Load looks for
// an optional uibench.yaml in the current directory; otherwise
// cfgFile must exist. A .env file in the current directory, if any,
// is loaded into the environment first.
func Load(cfgFile string) (*Config, error) {
	return load(cfgFile, ".env")
}

func load(cfgFile string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "loading %s", f)
		}
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("uibench")
	}

	v.SetEnvPrefix("UIBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if len(cfg.Contestants) == 0 {
		cfg.Contestants = benchurl.DefaultContestants
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("prefs.driver", "sqlite3")
	v.SetDefault("prefs.dsn", defaultPrefsPath())
	// The page posts to its own origin; other origins are opt-in.
	v.SetDefault("cors.origins", []string{})

	d := benchurl.DefaultOptions
	v.SetDefault("bench.iterations", d.Iterations)
	v.SetDefault("bench.disableSCU", d.DisableSCU)
	v.SetDefault("bench.enableDOMRecycling", d.EnableDOMRecycling)
	v.SetDefault("bench.mobile", d.Mobile)
	v.SetDefault("bench.fullRenderTime", d.FullRenderTime)
	v.SetDefault("bench.filter", d.Filter)
}

// defaultPrefsPath returns the default SQLite preferences file, in the
// user's configuration directory when there is one.
func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "uibench-prefs.db"
	}
	return filepath.Join(dir, "uibench", "prefs.db")
}

// Validate reports the first inconsistency in c.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is empty")
	}
	if c.Bench.Iterations < 1 {
		return errors.Errorf("config: bench.iterations must be positive, got %d", c.Bench.Iterations)
	}
	switch c.Prefs.Driver {
	case PrefsDisabled:
	case "sqlite3", "mysql":
		if c.Prefs.DSN == "" {
			return errors.Errorf("config: prefs.dsn is empty for driver %s", c.Prefs.Driver)
		}
	default:
		return errors.Errorf("config: unknown prefs driver %q", c.Prefs.Driver)
	}
	seen := make(map[string]bool)
	for i, ct := range c.Contestants {
		if ct.Name == "" || ct.BenchmarkURL == "" {
			return errors.Errorf("config: contestant %d needs a name and a benchmarkUrl", i)
		}
		if seen[ct.Name] {
			return errors.Errorf("config: duplicate contestant %q", ct.Name)
		}
		seen[ct.Name] = true
	}
	return nil
}

// EnsurePrefsDir creates the directory of a file-backed SQLite
// preferences database.
func (c *Config) EnsurePrefsDir() error {
	if c.Prefs.Driver != "sqlite3" || strings.HasPrefix(c.Prefs.DSN, "file:") || strings.HasPrefix(c.Prefs.DSN, ":memory:") {
		return nil
	}
	dir := filepath.Dir(c.Prefs.DSN)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating preferences directory")
	}
	return nil
}
