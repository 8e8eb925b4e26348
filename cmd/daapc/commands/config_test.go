// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DAAPC_CONFIG", "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Server != defaultServer {
		t.Errorf("Server = %q, want %q", cfg.Server, defaultServer)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want %q", cfg.Output, "table")
	}
	if cfg.PasswordFile != "" {
		t.Errorf("PasswordFile = %q, want empty", cfg.PasswordFile)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server: \"10.0.0.5:3689\"\npassword_file: \"~/.daap-password\"\noutput: json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Server != "10.0.0.5:3689" {
		t.Errorf("Server = %q, want %q", cfg.Server, "10.0.0.5:3689")
	}
	if cfg.PasswordFile != "~/.daap-password" {
		t.Errorf("PasswordFile = %q, want %q", cfg.PasswordFile, "~/.daap-password")
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "json")
	}
}

func TestLoadConfigEnvFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alt.yaml")
	if err := os.WriteFile(path, []byte("server: music.local:3689\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("DAAPC_CONFIG", path)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Server != "music.local:3689" {
		t.Errorf("Server = %q, want %q", cfg.Server, "music.local:3689")
	}
}

func TestLoadConfigBlankValuesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: \"   \"\noutput: \"\"\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Server != defaultServer {
		t.Errorf("Server = %q, want default %q", cfg.Server, defaultServer)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want %q", cfg.Output, "table")
	}
}

func TestLoadConfigInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig succeeded on invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %q, want parse failure", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/.config/daapc/config.yaml")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	want := filepath.Join(home, ".config", "daapc", "config.yaml")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPathAbsoluteUnchanged(t *testing.T) {
	got, err := expandPath("/etc/daapc/config.yaml")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	if got != "/etc/daapc/config.yaml" {
		t.Errorf("expandPath = %q, want path unchanged", got)
	}
}

func TestExpandPathEmptyFails(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expandPath succeeded on blank path")
	}
}

func TestServerFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server: 10.1.1.1:3689\npassword_file: /etc/daap-password\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	flags := serverFlags{
		configPath: path,
		server:     "10.2.2.2:3689",
	}
	cfg, err := flags.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server != "10.2.2.2:3689" {
		t.Errorf("Server = %q, want flag override %q", cfg.Server, "10.2.2.2:3689")
	}
	if cfg.PasswordFile != "/etc/daap-password" {
		t.Errorf("PasswordFile = %q, want file value preserved", cfg.PasswordFile)
	}
}
