// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package dmap

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Append appends a chunk with the given tag and raw payload to dst and
// returns the extended buffer. Decoding the result reproduces the tag
// and payload exactly.
func Append(dst []byte, tag Tag, payload []byte) []byte {
	var header [headerLength]byte
	copy(header[:4], tag[:])
	binary.BigEndian.PutUint32(header[4:], uint32(len(payload)))
	dst = append(dst, header[:]...)
	return append(dst, payload...)
}

// AppendUint32 appends a chunk whose payload is value as four
// big-endian bytes.
func AppendUint32(dst []byte, tag Tag, value uint32) []byte {
	var payload [4]byte
	binary.BigEndian.PutUint32(payload[:], value)
	return Append(dst, tag, payload[:])
}

// AppendString appends a chunk whose payload is the ISO 8859-1
// encoding of value. Runes outside Latin-1 become the charset's
// substitute byte rather than failing the append.
func AppendString(dst []byte, tag Tag, value string) []byte {
	encoder := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	encoded, _ := encoder.Bytes([]byte(value))
	return Append(dst, tag, encoded)
}

// AppendContainer appends a container chunk whose payload is the
// concatenation of the given pre-encoded children.
func AppendContainer(dst []byte, tag Tag, children ...[]byte) []byte {
	total := 0
	for _, child := range children {
		total += len(child)
	}
	var header [headerLength]byte
	copy(header[:4], tag[:])
	binary.BigEndian.PutUint32(header[4:], uint32(total))
	dst = append(dst, header[:]...)
	for _, child := range children {
		dst = append(dst, child...)
	}
	return dst
}
