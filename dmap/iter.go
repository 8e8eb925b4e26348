// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package dmap

// Iter walks the immediate children of a container chunk, in the
// bufio.Scanner style:
//
//	it := chunk.Children()
//	for it.Next() {
//		child := it.Chunk()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// A false Next with a nil Err means the payload was fully consumed; a
// non-nil Err means a child was malformed mid-payload. The two never
// coincide.
type Iter struct {
	payload []byte
	offset  int
	current Chunk
	err     error
}

// Children returns a fresh iterator over the chunk's immediate
// children. Each call returns an independent iterator.
func (c Chunk) Children() *Iter {
	return &Iter{payload: c.Payload}
}

// Next advances to the next child. It returns false at the end of the
// payload or on a malformed child; Err distinguishes the two.
func (it *Iter) Next() bool {
	if it.err != nil || it.offset >= len(it.payload) {
		return false
	}
	child, err := Decode(it.payload, it.offset)
	if err != nil {
		it.err = err
		return false
	}
	it.current = child
	it.offset += child.Size()
	return true
}

// Chunk returns the child most recently reached by Next.
func (it *Iter) Chunk() Chunk {
	return it.current
}

// Err returns the decode error that stopped iteration, or nil if the
// payload was consumed cleanly.
func (it *Iter) Err() error {
	return it.err
}

// First returns the first immediate child carrying tag. Children with
// other tags are skipped. The second result is false when no child
// matches; the error is non-nil only when a malformed child was hit
// before a match.
func (c Chunk) First(tag Tag) (Chunk, bool, error) {
	it := c.Children()
	for it.Next() {
		if it.Chunk().Tag == tag {
			return it.Chunk(), true, nil
		}
	}
	if err := it.Err(); err != nil {
		return Chunk{}, false, err
	}
	return Chunk{}, false, nil
}

// All returns every immediate child carrying tag, in encounter order.
// It does not descend into nested containers. A malformed child
// anywhere in the payload discards all matches and returns the error.
func (c Chunk) All(tag Tag) ([]Chunk, error) {
	var matches []Chunk
	it := c.Children()
	for it.Next() {
		if it.Chunk().Tag == tag {
			matches = append(matches, it.Chunk())
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// IntField returns the integer payload of the first child carrying
// tag, or -1 when the container has no such child.
func (c Chunk) IntField(tag Tag) (int, error) {
	child, ok, err := c.First(tag)
	if err != nil {
		return -1, err
	}
	if !ok {
		return -1, nil
	}
	return int(child.Uint32()), nil
}

// TextField returns the text payload of the first child carrying tag,
// or the empty string when the container has no such child.
func (c Chunk) TextField(tag Tag) (string, error) {
	child, ok, err := c.First(tag)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return child.Text(), nil
}
