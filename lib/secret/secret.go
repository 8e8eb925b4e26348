// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds library passwords in memory that is locked
// against swapping, excluded from core dumps, and zeroed on close.
//
// A Buffer lives outside the Go heap in an anonymous mmap region, so
// the garbage collector never copies or relocates it. Whether the
// password arrives from a terminal prompt or a credentials file, the
// plaintext exists on the Go heap only transiently, at the point where
// an API demands a string.
package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer is a protected byte region for a password. It must not be
// copied after creation. Close releases and zeroes the memory; any
// access after Close panics.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// alloc maps an anonymous region of the given size, locked into RAM
// and excluded from core dumps.
func alloc(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap: %w", err)
	}
	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock: %w", err)
	}
	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP): %w", err)
	}
	return data, nil
}

// NewFromBytes copies source into a protected buffer and zeroes the
// source in place, so the caller's slice no longer holds the password.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: empty source")
	}
	data, err := alloc(len(source))
	if err != nil {
		return nil, err
	}
	copy(data, source)
	Zero(source)
	return &Buffer{data: data}, nil
}

// ReadFromPath reads a password from a file, or from stdin when path
// is "-". Surrounding whitespace (including the trailing newline every
// editor appends) is trimmed. The caller owns the returned buffer.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte
	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("secret: reading stdin: %w", err)
			}
			return nil, fmt.Errorf("secret: stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret: %s holds no password", describeSource(path))
	}

	// NewFromBytes zeroes trimmed; the whitespace bytes around it still
	// need wiping.
	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

func describeSource(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

// Zero overwrites every byte of data. Use it on transient copies that
// held password material.
func Zero(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// Bytes returns the password bytes. The slice points into the mmap
// region; do not retain it past the buffer's lifetime. Panics after
// Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: read from closed buffer")
	}
	return b.data
}

// String returns the password as a heap-allocated string. Only use it
// at API boundaries that demand a string; prefer Bytes. Panics after
// Close.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: read from closed buffer")
	}
	return string(b.data)
}

// Len returns the password length in bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Close zeroes the buffer and unmaps the memory. Idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	Zero(b.data)
	var firstErr error
	if err := unix.Munlock(b.data); err != nil {
		firstErr = fmt.Errorf("secret: munlock: %w", err)
	}
	if err := unix.Munmap(b.data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secret: munmap: %w", err)
	}
	b.data = nil
	return firstErr
}
