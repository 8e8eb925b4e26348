// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the daapc binary: the
// command tree with pflag parsing and help output, structured logging
// for command runs, exit-code signalling, and password entry.
package cli
