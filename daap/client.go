// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package daap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/crateworks/daapc/lib/secret"
)

// Config holds configuration for creating a Client.
type Config struct {
	// Addr is the server's host:port, e.g. "192.168.1.20:3689".
	Addr string
	// Transport executes the protocol requests. Usually a
	// *transport.Client for the same address.
	Transport Transport
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is a DAAP client for a single server. It tracks the session
// and revision acquired at login and serializes its operations, so at
// most one request is in flight at a time.
type Client struct {
	addr      string
	transport Transport
	logger    *slog.Logger

	mu         sync.Mutex
	sessionID  int
	revisionID int
}

// New creates a Client for the server at config.Addr.
func New(config Config) (*Client, error) {
	if config.Addr == "" {
		return nil, fmt.Errorf("daap: Addr is required")
	}
	if _, _, err := net.SplitHostPort(config.Addr); err != nil {
		return nil, fmt.Errorf("daap: Addr must be host:port: %w", err)
	}
	if config.Transport == nil {
		return nil, fmt.Errorf("daap: Transport is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		addr:       config.Addr,
		transport:  config.Transport,
		logger:     logger,
		sessionID:  -1,
		revisionID: -1,
	}, nil
}

// Login performs the two-request login sequence: acquire a session id,
// then the server's catalog revision. On success the client is ready
// for FetchCatalog. A *StatusError carries the server's refusal (401
// for a password-protected share); re-initiate with LoginWithPassword
// to retry with credentials.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runLogin(ctx)
}

// LoginWithPassword attaches the password to the transport and then
// runs the login sequence. The caller keeps ownership of the buffer
// and must keep it open for the lifetime of the client.
func (c *Client) LoginWithPassword(ctx context.Context, password *secret.Buffer) error {
	if password == nil {
		return fmt.Errorf("daap: password is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transport.SetPassword(password)
	return c.runLogin(ctx)
}

func (c *Client) runLogin(ctx context.Context) error {
	flow := newLoginFlow()
	if err := flow.start(); err != nil {
		return err
	}

	var login loginRequest
	if err := c.do(ctx, "login", &login); err != nil {
		flow.fail(err)
		return flow.failure
	}
	if err := flow.sessionAcquired(login.sessionID); err != nil {
		return err
	}

	update := updateRequest{session: flow.sessionID}
	if err := c.do(ctx, "session refresh", &update); err != nil {
		flow.fail(err)
		return flow.failure
	}
	if err := flow.revisionAcquired(update.revision); err != nil {
		return err
	}

	c.sessionID = flow.sessionID
	c.revisionID = flow.revision
	c.logger.Debug("logged in",
		"addr", c.addr,
		"session", c.sessionID,
		"revision", c.revisionID)
	return nil
}

// FetchCatalog enumerates the server's media catalog. It requires a
// completed login; without one it fails with ErrNotLoggedIn before
// any request is made. On any error the returned slice is nil, never
// partial.
func (c *Client) FetchCatalog(ctx context.Context) ([]MediaItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID < 0 || c.revisionID < 0 {
		return nil, ErrNotLoggedIn
	}

	req := itemsRequest{addr: c.addr, session: c.sessionID, revision: c.revisionID}
	if err := c.do(ctx, "catalog fetch", &req); err != nil {
		return nil, err
	}
	c.logger.Debug("catalog fetched",
		"addr", c.addr,
		"session", c.sessionID,
		"items", len(req.items))
	return req.items, nil
}

// ServerInfo asks the server to describe itself. No login is needed.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var req serverInfoRequest
	if err := c.do(ctx, "server info", &req); err != nil {
		return nil, err
	}
	return &req.info, nil
}

// Logout releases the session on the server and forgets it locally.
// The client can log in again afterwards.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID < 0 {
		return ErrNotLoggedIn
	}

	req := logoutRequest{session: c.sessionID}
	if err := c.do(ctx, "logout", &req); err != nil {
		return err
	}
	c.logger.Debug("logged out", "addr", c.addr, "session", c.sessionID)
	c.sessionID = -1
	c.revisionID = -1
	return nil
}

// SessionID returns the session identifier acquired at login. ok is
// false before the first successful login and after Logout.
func (c *Client) SessionID() (id int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID, c.sessionID >= 0
}

// RevisionID returns the catalog revision acquired at login. ok is
// false before the first successful login and after Logout.
func (c *Client) RevisionID() (id int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revisionID, c.revisionID >= 0
}

// do executes one request through the transport and hands the body to
// the request's interpreter. op names the request in errors. Transport
// failures pass through wrapped; interpretation failures become
// *ProtocolError.
func (c *Client) do(ctx context.Context, op string, req request) error {
	body, err := c.transport.Execute(ctx, req.uri())
	if err != nil {
		return fmt.Errorf("daap: %s failed: %w", op, err)
	}
	if err := req.interpret(body); err != nil {
		return &ProtocolError{Op: op, Err: err}
	}
	return nil
}
