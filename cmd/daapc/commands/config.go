// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is consulted when neither --config nor
// $DAAPC_CONFIG names a file.
const defaultConfigPath = "~/.config/daapc/config.yaml"

// defaultServer is the conventional DAAP port on the local host.
const defaultServer = "127.0.0.1:3689"

// Config holds the settings shared by the subcommands. Values come
// from the config file; flags override individual fields.
type Config struct {
	// Server is the media server address as host:port.
	Server string `yaml:"server"`

	// PasswordFile names a file holding the login password, for
	// servers that require one. "-" reads the password from stdin.
	PasswordFile string `yaml:"password_file"`

	// Output selects how `daapc list` renders the catalog: "table"
	// or "json".
	Output string `yaml:"output"`
}

// loadConfig reads the config file at path, falling back to defaults
// when the file does not exist. An empty path resolves through
// $DAAPC_CONFIG and then the default location.
func loadConfig(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("DAAPC_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Server: defaultServer, Output: "table"}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", resolved, err)
	}

	if server := strings.TrimSpace(raw.Server); server != "" {
		cfg.Server = server
	}
	if passwordFile := strings.TrimSpace(raw.PasswordFile); passwordFile != "" {
		cfg.PasswordFile = passwordFile
	}
	if output := strings.TrimSpace(raw.Output); output != "" {
		cfg.Output = output
	}

	return cfg, nil
}

// expandPath resolves a leading tilde against the home directory and
// returns an absolute path.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
