// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package dmap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// headerLength is the fixed size of a chunk header: 4 bytes content
// code + 4 bytes payload length.
const headerLength = 8

// Decode errors. Both indicate a malformed buffer, not a protocol
// failure: ErrTruncatedHeader means fewer than eight bytes remained
// where a chunk was expected, ErrTruncatedPayload means a header
// declared more payload than the buffer holds.
var (
	ErrTruncatedHeader  = errors.New("dmap: truncated chunk header")
	ErrTruncatedPayload = errors.New("dmap: truncated chunk payload")
)

// Chunk is a single decoded chunk. The payload aliases the buffer it
// was decoded from; callers must not mutate it. Container chunks hold
// their children serialized in Payload and are walked with Children.
type Chunk struct {
	Tag     Tag
	Payload []byte
}

// Decode reads the chunk starting at offset in buf. The payload is a
// subslice of buf, not a copy. Errors match ErrTruncatedHeader or
// ErrTruncatedPayload via errors.Is.
func Decode(buf []byte, offset int) (Chunk, error) {
	if offset < 0 {
		return Chunk{}, fmt.Errorf("dmap: negative decode offset %d", offset)
	}
	remaining := max(len(buf)-offset, 0)
	if remaining < headerLength {
		return Chunk{}, fmt.Errorf("%w: %d bytes at offset %d, header needs %d",
			ErrTruncatedHeader, remaining, offset, headerLength)
	}
	var tag Tag
	copy(tag[:], buf[offset:offset+4])
	// The length is an unsigned 32-bit value; compare in uint64 so a
	// high-bit length cannot wrap the bounds check on 32-bit ints.
	length := binary.BigEndian.Uint32(buf[offset+4 : offset+headerLength])
	if uint64(length) > uint64(remaining-headerLength) {
		return Chunk{}, fmt.Errorf("%w: %s declares %d bytes, %d remain at offset %d",
			ErrTruncatedPayload, tag, length, remaining-headerLength, offset)
	}
	start := offset + headerLength
	return Chunk{Tag: tag, Payload: buf[start : start+int(length)]}, nil
}

// Size returns the encoded size of the chunk, header included.
func (c Chunk) Size() int {
	return headerLength + len(c.Payload)
}

// Uint32 interprets the payload as a big-endian unsigned integer: the
// first four bytes when the payload has at least four, otherwise every
// available byte. Short payloads never read past the chunk.
func (c Chunk) Uint32() uint32 {
	if len(c.Payload) >= 4 {
		return binary.BigEndian.Uint32(c.Payload[:4])
	}
	var v uint32
	for _, b := range c.Payload {
		v = v<<8 | uint32(b)
	}
	return v
}

// Text interprets the payload as ISO 8859-1 text. DAAP servers emit
// metadata in Latin-1, not validated UTF-8.
func (c Chunk) Text() string {
	if len(c.Payload) == 0 {
		return ""
	}
	// ISO 8859-1 maps every byte, so decoding cannot fail.
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(c.Payload)
	return string(decoded)
}

// String returns a debug description of the chunk.
func (c Chunk) String() string {
	return fmt.Sprintf("%s(%d bytes)", c.Tag, len(c.Payload))
}
