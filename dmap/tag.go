// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package dmap

import "fmt"

// Tag is a four-character DMAP content code, such as "mlid" or "minm".
// Tags compare with ==.
type Tag [4]byte

// NewTag converts a four-character content code into a Tag. It panics
// on any other length; codes are compile-time literals.
func NewTag(code string) Tag {
	if len(code) != 4 {
		panic(fmt.Sprintf("dmap: content code %q is not four bytes", code))
	}
	var t Tag
	copy(t[:], code)
	return t
}

// String returns the four-character code.
func (t Tag) String() string {
	return string(t[:])
}

// Content codes for the exchanges this client performs. The wire names
// are the DMAP four-character codes; the Go names say what they carry.
var (
	// TagStatus (mstt) is the server's DMAP status code for a response.
	TagStatus = NewTag("mstt")

	// TagLogin (mlog) is the container returned by the login request.
	TagLogin = NewTag("mlog")

	// TagSessionID (mlid) carries the session identifier issued at login.
	TagSessionID = NewTag("mlid")

	// TagUpdate (mupd) is the container returned by the update request.
	TagUpdate = NewTag("mupd")

	// TagServerRevision (musr) carries the server's catalog revision.
	TagServerRevision = NewTag("musr")

	// TagServerInfo (msrv) is the container returned by server-info.
	TagServerInfo = NewTag("msrv")

	// TagDMAPVersion (mpro) and TagDAAPVersion (apro) carry protocol
	// versions with the major number in the upper 16 bits.
	TagDMAPVersion = NewTag("mpro")
	TagDAAPVersion = NewTag("apro")

	// TagDatabaseSongs (adbs) is the container returned by the items
	// request on a database.
	TagDatabaseSongs = NewTag("adbs")

	// TagUpdateType (muty), TagTotalCount (mtco) and TagReturnedCount
	// (mrco) precede the listing in enumeration responses.
	TagUpdateType    = NewTag("muty")
	TagTotalCount    = NewTag("mtco")
	TagReturnedCount = NewTag("mrco")

	// TagListing (mlcl) is the container holding one TagListingItem
	// (mlit) per media item.
	TagListing     = NewTag("mlcl")
	TagListingItem = NewTag("mlit")

	// Per-item fields inside a TagListingItem.
	TagItemID          = NewTag("miid")
	TagItemName        = NewTag("minm")
	TagSongFormat      = NewTag("asfm")
	TagSongAlbum       = NewTag("asal")
	TagSongArtist      = NewTag("asar")
	TagSongGenre       = NewTag("asgn")
	TagSongTrackNumber = NewTag("astn")
	TagSongTime        = NewTag("astm")
	TagSongSize        = NewTag("assz")
	TagSongBitRate     = NewTag("asbr")
	TagSongYear        = NewTag("asyr")
)
