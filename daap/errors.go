// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package daap

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned by operations that need a session before
// any request is made. Call Login or LoginWithPassword first.
var ErrNotLoggedIn = errors.New("daap: not logged in")

// StatusError is a non-success response from the server. Callers can
// use errors.As to extract the code:
//
//	var statusErr *daap.StatusError
//	if errors.As(err, &statusErr) {
//	    if statusErr.Code == http.StatusUnauthorized { ... }
//	}
type StatusError struct {
	// Code is the HTTP status code the server returned.
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("daap: server returned status %d", e.Code)
}

// IsStatus reports whether err is a *StatusError carrying code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == code
	}
	return false
}

// ProtocolError is a response that arrived with a success status but
// could not be interpreted: a truncated or malformed chunk buffer, or
// a response missing a field the protocol requires. Retrying will not
// help; the server is speaking something other than what we expect.
type ProtocolError struct {
	// Op names the request whose response was bad ("login",
	// "session refresh", "catalog fetch", ...).
	Op string
	// Err is the underlying decode or structure problem.
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("daap: %s: malformed response: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
