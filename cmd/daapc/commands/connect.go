// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spf13/pflag"

	"github.com/crateworks/daapc/cmd/daapc/cli"
	"github.com/crateworks/daapc/daap"
	"github.com/crateworks/daapc/lib/secret"
	"github.com/crateworks/daapc/transport"
)

// serverFlags carries the connection flags shared by every subcommand
// that talks to a server.
type serverFlags struct {
	configPath   string
	server       string
	passwordFile string
}

// register declares the shared connection flags on a flag set.
func (flags *serverFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.configPath, "config", "",
		"config file (default $DAAPC_CONFIG, then ~/.config/daapc/config.yaml)")
	flagSet.StringVar(&flags.server, "server", "",
		"media server address as host:port")
	flagSet.StringVar(&flags.passwordFile, "password-file", "",
		`file holding the login password ("-" reads stdin)`)
}

// load resolves the effective configuration: config file values
// first, then flag overrides for the fields that were set.
func (flags *serverFlags) load() (Config, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return Config{}, err
	}
	if flags.server != "" {
		cfg.Server = flags.server
	}
	if flags.passwordFile != "" {
		cfg.PasswordFile = flags.passwordFile
	}
	return cfg, nil
}

// newClient builds the HTTP transport and the protocol client for the
// configured server.
func newClient(cfg Config, logger *slog.Logger) (*daap.Client, error) {
	httpTransport, err := transport.New(transport.Config{
		Addr:   cfg.Server,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	return daap.New(daap.Config{
		Addr:      cfg.Server,
		Transport: httpTransport,
		Logger:    logger,
	})
}

// login performs the session handshake. The first attempt is
// anonymous; when the server answers 401, the password is read from
// the configured file (or prompted on the terminal) and the login is
// retried once with credentials.
//
// The returned buffer is non-nil when credentials were used. It backs
// the Authorization header of every later request on this client, so
// the caller must keep it open until the last request is done and
// close it then.
func login(ctx context.Context, client *daap.Client, cfg Config) (*secret.Buffer, error) {
	err := client.Login(ctx)
	if err == nil {
		return nil, nil
	}
	if !daap.IsStatus(err, http.StatusUnauthorized) {
		return nil, err
	}

	passwordPath := cfg.PasswordFile
	if passwordPath != "" && passwordPath != "-" {
		if passwordPath, err = expandPath(passwordPath); err != nil {
			return nil, err
		}
	}

	password, err := cli.ReadPassword(passwordPath)
	if err != nil {
		return nil, err
	}
	if err := client.LoginWithPassword(ctx, password); err != nil {
		password.Close()
		return nil, err
	}
	return password, nil
}
