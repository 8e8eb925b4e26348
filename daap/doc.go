// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package daap implements a client for the DAAP media-sharing
// protocol: the two-request login handshake, session and revision
// tracking, and enumeration of a server's media catalog.
//
// The package is organized around the protocol flow:
//
//   - transport.go: the Transport contract requests run through
//   - request.go: per-request URIs and response interpretation
//   - flow.go: the login sequence as an explicit state machine
//   - item.go: the MediaItem catalog entry and its wire mapping
//   - client.go: the Client facade tying the above together
//   - errors.go: the error taxonomy callers dispatch on
//
// A Client serializes its operations internally; it never has two
// requests outstanding against the same server.
package daap
