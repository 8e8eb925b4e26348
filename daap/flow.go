// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package daap

import "fmt"

// flowState is one stage of the login sequence.
type flowState int

const (
	// flowIdle: no login attempt underway.
	flowIdle flowState = iota
	// flowAwaitingSession: the login request is out, no session yet.
	flowAwaitingSession
	// flowAwaitingRevision: session acquired, the revision request is
	// out.
	flowAwaitingRevision
	// flowCompleted: session and revision both acquired.
	flowCompleted
	// flowFailed: a request failed; the failure is recorded and the
	// sequence stops.
	flowFailed
)

func (s flowState) String() string {
	switch s {
	case flowIdle:
		return "idle"
	case flowAwaitingSession:
		return "awaiting session"
	case flowAwaitingRevision:
		return "awaiting revision"
	case flowCompleted:
		return "completed"
	case flowFailed:
		return "failed"
	}
	return fmt.Sprintf("flowState(%d)", int(s))
}

// loginFlow is the two-request login sequence as an explicit state
// machine. It performs no I/O; the client feeds it events and it
// tracks where the sequence stands, so every transition is testable
// without a server. A failure while awaiting the session means the
// revision request is never issued.
type loginFlow struct {
	state     flowState
	sessionID int
	revision  int
	failure   error
}

func newLoginFlow() *loginFlow {
	return &loginFlow{state: flowIdle, sessionID: -1, revision: -1}
}

// start arms the flow: the login request is about to be issued.
func (f *loginFlow) start() error {
	if f.state != flowIdle {
		return f.badEvent("start")
	}
	f.state = flowAwaitingSession
	return nil
}

// sessionAcquired records the session id from the login response and
// moves on to awaiting the revision.
func (f *loginFlow) sessionAcquired(id int) error {
	if f.state != flowAwaitingSession {
		return f.badEvent("session acquired")
	}
	f.sessionID = id
	f.state = flowAwaitingRevision
	return nil
}

// revisionAcquired records the catalog revision and completes the
// flow.
func (f *loginFlow) revisionAcquired(revision int) error {
	if f.state != flowAwaitingRevision {
		return f.badEvent("revision acquired")
	}
	f.revision = revision
	f.state = flowCompleted
	return nil
}

// fail records a request failure and stops the sequence. Failure is
// terminal and permitted from any state.
func (f *loginFlow) fail(err error) {
	f.failure = err
	f.state = flowFailed
}

func (f *loginFlow) badEvent(event string) error {
	return fmt.Errorf("daap: login flow: %q event in state %q", event, f.state)
}
