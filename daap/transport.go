// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package daap

import (
	"context"

	"github.com/crateworks/daapc/lib/secret"
)

// Transport executes protocol requests against one server. The
// production implementation is transport.Client; tests substitute
// scripted fakes.
type Transport interface {
	// Execute performs the request for the given server-relative URI
	// (no leading slash) and returns the raw response body. A
	// non-success status surfaces as a *StatusError and the body is
	// discarded.
	Execute(ctx context.Context, relativeURI string) ([]byte, error)

	// SetPassword attaches credentials to every subsequent request.
	// The transport borrows the buffer; the caller keeps ownership.
	SetPassword(password *secret.Buffer)
}
