// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

// Package dmap decodes and encodes the tagged binary format that DAAP
// servers speak. Every value on the wire is a chunk: a four-character
// content code, a big-endian uint32 payload length, and the payload
// itself. Container chunks nest further chunks inside their payload;
// leaf chunks carry integers or ISO 8859-1 text.
//
// The package is organized by concern:
//
//   - tag.go: content codes for the login and catalog exchanges
//   - chunk.go: the Chunk value and Decode
//   - iter.go: child iteration and field lookup over containers
//   - encode.go: append-style builders, used by tests and fake servers
//
// Chunks are plain values over a shared backing buffer. Iteration
// state lives in the iterator, never in the chunk, so the same chunk
// can be walked concurrently from independent call sites.
package dmap
