// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package daap

import (
	"fmt"

	"github.com/crateworks/daapc/dmap"
)

// fieldList is the meta parameter of catalog requests: the per-item
// fields the server should inline, in the order the client reads them
// back. Fixed so request URIs are stable.
const fieldList = "dmap.itemid,daap.songformat,dmap.itemname,daap.songalbum," +
	"daap.songartist,daap.songgenre,daap.songtracknumber,daap.songtime," +
	"daap.songsize,daap.songyear,daap.songbitrate"

// A request pairs a server-relative URI with the interpretation of its
// success response. Interpretation runs only when the transport
// delivered a body; transport failures never reach it.
type request interface {
	uri() string
	interpret(body []byte) error
}

// decodeResponse decodes the top-level chunk of a response body.
func decodeResponse(body []byte) (dmap.Chunk, error) {
	return dmap.Decode(body, 0)
}

// loginRequest asks the server for a new session. The response is
// mlog{mstt, mlid}; a missing mlid is a structural violation, not an
// absent field.
type loginRequest struct {
	sessionID int
}

func (r *loginRequest) uri() string {
	return "login"
}

func (r *loginRequest) interpret(body []byte) error {
	top, err := decodeResponse(body)
	if err != nil {
		return err
	}
	session, ok, err := top.First(dmap.TagSessionID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s response carries no session id (mlid)", top.Tag)
	}
	r.sessionID = int(session.Uint32())
	return nil
}

// updateRequest asks for the server's current catalog revision. The
// response is mupd{mstt, musr}.
type updateRequest struct {
	session  int
	revision int
}

func (r *updateRequest) uri() string {
	return fmt.Sprintf("update?session-id=%d", r.session)
}

func (r *updateRequest) interpret(body []byte) error {
	top, err := decodeResponse(body)
	if err != nil {
		return err
	}
	revision, ok, err := top.First(dmap.TagServerRevision)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s response carries no revision (musr)", top.Tag)
	}
	r.revision = int(revision.Uint32())
	return nil
}

// itemsRequest enumerates the catalog of database 1. The response
// nests one mlit per item inside the first mlcl listing.
type itemsRequest struct {
	addr     string
	session  int
	revision int
	items    []MediaItem
}

func (r *itemsRequest) uri() string {
	return fmt.Sprintf("databases/1/items?type=music&session-id=%d&revision-id=%d&meta=%s",
		r.session, r.revision, fieldList)
}

func (r *itemsRequest) interpret(body []byte) error {
	top, err := decodeResponse(body)
	if err != nil {
		return err
	}
	listing, ok, err := top.First(dmap.TagListing)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s response carries no listing (mlcl)", top.Tag)
	}
	chunks, err := listing.All(dmap.TagListingItem)
	if err != nil {
		return err
	}

	items := make([]MediaItem, 0, len(chunks))
	for i, chunk := range chunks {
		item, err := itemFromChunk(chunk, r.addr, r.session)
		if err != nil {
			return fmt.Errorf("item %d of %d: %w", i+1, len(chunks), err)
		}
		items = append(items, item)
	}
	r.items = items
	return nil
}

// serverInfoRequest asks what the server is, before any login. The
// response is msrv{mstt, mpro, apro, minm, ...}.
type serverInfoRequest struct {
	info ServerInfo
}

// ServerInfo describes a server as reported by its server-info
// endpoint.
type ServerInfo struct {
	// Name is the share name the server announces, e.g. "Mike's Music".
	Name string

	// DMAPVersion and DAAPVersion are the protocol versions in
	// "major.minor" form, empty when the server omitted them.
	DMAPVersion string
	DAAPVersion string
}

func (r *serverInfoRequest) uri() string {
	return "server-info"
}

func (r *serverInfoRequest) interpret(body []byte) error {
	top, err := decodeResponse(body)
	if err != nil {
		return err
	}
	if r.info.Name, err = top.TextField(dmap.TagItemName); err != nil {
		return err
	}
	dmapVersion, err := top.IntField(dmap.TagDMAPVersion)
	if err != nil {
		return err
	}
	daapVersion, err := top.IntField(dmap.TagDAAPVersion)
	if err != nil {
		return err
	}
	r.info.DMAPVersion = formatVersion(dmapVersion)
	r.info.DAAPVersion = formatVersion(daapVersion)
	return nil
}

// formatVersion renders a packed protocol version: major in the upper
// 16 bits, minor in the lower. The absent sentinel renders empty.
func formatVersion(packed int) string {
	if packed < 0 {
		return ""
	}
	return fmt.Sprintf("%d.%d", packed>>16, packed&0xffff)
}

// logoutRequest releases a session. The server answers with an empty
// body; there is nothing to interpret.
type logoutRequest struct {
	session int
}

func (r *logoutRequest) uri() string {
	return fmt.Sprintf("logout?session-id=%d", r.session)
}

func (r *logoutRequest) interpret([]byte) error {
	return nil
}
