// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport executes DAAP requests over HTTP. It owns the
// concerns below the protocol itself: request headers, optional Basic
// credentials, gzip-compressed bodies, and bounding how much of a
// response is read into memory.
//
// The Client satisfies daap.Transport. One transport serves one
// server; the daap.Client built on top serializes its calls, so the
// transport never sees concurrent requests for the same session.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/crateworks/daapc/daap"
	"github.com/crateworks/daapc/lib/secret"
	"github.com/crateworks/daapc/lib/version"
)

// maxResponseSize bounds response body reads: 64 MB. A catalog
// enumeration for a large library runs to tens of megabytes; the bound
// only exists so a misbehaving server cannot exhaust memory.
const maxResponseSize int64 = 64 << 20

// basicAuthUser is the username sent with Basic credentials. DAAP
// servers authenticate on the password alone and ignore the username.
const basicAuthUser = "daapc"

// Config holds configuration for creating a Client.
type Config struct {
	// Addr is the server's host:port, e.g. "192.168.1.20:3689".
	Addr string
	// HTTPClient is used for all requests. If nil, a client with a 30
	// second timeout is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is an HTTP executor for one DAAP server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu       sync.Mutex
	password *secret.Buffer
}

// New creates a Client for the server at config.Addr.
func New(config Config) (*Client, error) {
	if config.Addr == "" {
		return nil, fmt.Errorf("transport: Addr is required")
	}
	if _, _, err := net.SplitHostPort(config.Addr); err != nil {
		return nil, fmt.Errorf("transport: Addr must be host:port: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    "http://" + config.Addr,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// SetPassword attaches Basic credentials to every subsequent request.
// The client borrows the buffer; the caller keeps ownership and must
// keep it open while the transport is in use. Passing nil clears the
// credentials.
func (c *Client) SetPassword(password *secret.Buffer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.password = password
}

// Execute performs a GET for the given server-relative URI and returns
// the response body. A non-2xx status is returned as *daap.StatusError
// with the body discarded. Cancellation and deadlines ride ctx.
func (c *Client) Execute(ctx context.Context, relativeURI string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+relativeURI, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: build request for %q: %w", relativeURI, err)
	}
	request.Header.Set("Accept", "application/x-dmap-tagged")
	request.Header.Set("Client-DAAP-Version", "3.0")
	request.Header.Set("User-Agent", version.UserAgent())
	// Ask for gzip explicitly. Setting the header disables net/http's
	// transparent decompression, so gzip bodies are decoded below.
	request.Header.Set("Accept-Encoding", "gzip")

	c.mu.Lock()
	password := c.password
	c.mu.Unlock()
	if password != nil {
		// The plaintext enters the heap only here, inside the header
		// value for this one request.
		request.SetBasicAuth(basicAuthUser, password.String())
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("transport: %s: %w", relativeURI, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		// Drain (bounded) so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(response.Body, maxResponseSize))
		c.logger.Debug("request refused",
			"uri", relativeURI,
			"status", response.StatusCode)
		return nil, &daap.StatusError{Code: response.StatusCode}
	}

	var reader io.Reader = response.Body
	if response.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("transport: %s: gzip response: %w", relativeURI, err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	body, err := io.ReadAll(io.LimitReader(reader, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("transport: %s: read response: %w", relativeURI, err)
	}
	c.logger.Debug("request served",
		"uri", relativeURI,
		"status", response.StatusCode,
		"bytes", len(body))
	return body, nil
}
