// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/tallyhq/tally/internal/config"
)

func TestLoadConfig_DefaultsApply(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	c, usedFile, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if usedFile != "" {
		t.Fatalf("expected no config file to be used on first run, got %q", usedFile)
	}
	if c.Language != "en" {
		t.Fatalf("expected default language %q, got %q", "en", c.Language)
	}
	if c.UI.Accent != "81" {
		t.Fatalf("expected default accent %q, got %q", "81", c.UI.Accent)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "language: de\nui:\n  accent: \"205\"\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	c, usedFile, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if usedFile != file {
		t.Fatalf("expected used config file %q, got %q", file, usedFile)
	}
	if c.Language != "de" {
		t.Fatalf("expected language %q from file, got %q", "de", c.Language)
	}
	if c.UI.Accent != "205" {
		t.Fatalf("expected accent %q from file, got %q", "205", c.UI.Accent)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "language: de\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_ = os.Setenv("TALLY_LANGUAGE", "en")
	defer func() { _ = os.Unsetenv("TALLY_LANGUAGE") }()

	c, _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("expected env to override file, got language %q", c.Language)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv("XDG_CONFIG_HOME", tmp)
	defer func() { _ = os.Unsetenv("XDG_CONFIG_HOME") }()

	c := cfg.Config{Language: "en", UI: cfg.UI{Accent: "81"}}
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s, read error: %v", path, err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty config file at %s", path)
	}
}
