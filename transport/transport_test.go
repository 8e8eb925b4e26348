// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/crateworks/daapc/daap"
	"github.com/crateworks/daapc/lib/secret"
)

// newTestTransport starts an httptest server with the given handler
// and returns a Client pointed at it.
func newTestTransport(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{Addr: strings.TrimPrefix(server.URL, "http://")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewValidation(t *testing.T) {
	t.Run("empty addr", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Fatal("expected error for empty Addr")
		}
	})

	t.Run("addr without port", func(t *testing.T) {
		if _, err := New(Config{Addr: "192.168.1.20"}); err == nil {
			t.Fatal("expected error for Addr without port")
		}
	})
}

func TestExecuteSendsProtocolHeaders(t *testing.T) {
	client := newTestTransport(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodGet {
			t.Errorf("method: got %s, want GET", request.Method)
		}
		if got := request.URL.RequestURI(); got != "/update?session-id=31" {
			t.Errorf("request uri: got %q, want %q", got, "/update?session-id=31")
		}
		if got := request.Header.Get("Accept"); got != "application/x-dmap-tagged" {
			t.Errorf("Accept: got %q", got)
		}
		if got := request.Header.Get("Client-DAAP-Version"); got != "3.0" {
			t.Errorf("Client-DAAP-Version: got %q", got)
		}
		if got := request.Header.Get("User-Agent"); !strings.HasPrefix(got, "daapc/") {
			t.Errorf("User-Agent: got %q, want daapc/ prefix", got)
		}
		if _, _, ok := request.BasicAuth(); ok {
			t.Error("unexpected credentials before SetPassword")
		}
		writer.Write([]byte("payload"))
	})

	body, err := client.Execute(context.Background(), "update?session-id=31")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !bytes.Equal(body, []byte("payload")) {
		t.Errorf("body: got %q, want %q", body, "payload")
	}
}

func TestExecuteStatusError(t *testing.T) {
	client := newTestTransport(t, func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "unauthorized", http.StatusUnauthorized)
	})

	body, err := client.Execute(context.Background(), "login")
	var statusErr *daap.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("got %v, want a StatusError", err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Errorf("code: got %d, want %d", statusErr.Code, http.StatusUnauthorized)
	}
	if body != nil {
		t.Errorf("body: got %q, want nil", body)
	}
}

func TestExecuteBasicAuth(t *testing.T) {
	client := newTestTransport(t, func(writer http.ResponseWriter, request *http.Request) {
		user, password, ok := request.BasicAuth()
		if !ok {
			t.Error("no credentials on request")
		}
		if user != "daapc" || password != "hunter2" {
			t.Errorf("credentials: got %q/%q, want daapc/hunter2", user, password)
		}
		writer.Write([]byte("ok"))
	})

	password, err := secret.NewFromBytes([]byte("hunter2"))
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	t.Cleanup(func() { password.Close() })
	client.SetPassword(password)

	if _, err := client.Execute(context.Background(), "login"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestExecuteGzipResponse(t *testing.T) {
	client := newTestTransport(t, func(writer http.ResponseWriter, request *http.Request) {
		if got := request.Header.Get("Accept-Encoding"); got != "gzip" {
			t.Errorf("Accept-Encoding: got %q, want gzip", got)
		}
		writer.Header().Set("Content-Encoding", "gzip")
		gzipWriter := gzip.NewWriter(writer)
		gzipWriter.Write([]byte("compressed payload"))
		gzipWriter.Close()
	})

	body, err := client.Execute(context.Background(), "databases/1/items")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !bytes.Equal(body, []byte("compressed payload")) {
		t.Errorf("body: got %q, want %q", body, "compressed payload")
	}
}

func TestExecuteCanceledContext(t *testing.T) {
	client := newTestTransport(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("never read"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Execute(ctx, "login"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
