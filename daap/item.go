// Copyright 2026 The Daapc Authors
// SPDX-License-Identifier: Apache-2.0

package daap

import (
	"fmt"

	"github.com/crateworks/daapc/dmap"
)

// MediaItem is one entry of a server's catalog.
type MediaItem struct {
	// ID identifies the item within its session, "{session}-{item}".
	ID string `json:"id"`

	// URI locates the item's media stream on the server. It embeds the
	// session id, so it is only valid while the session lives.
	URI string `json:"uri"`

	Title  string `json:"title"`
	Album  string `json:"album"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`

	// Format is the media container extension, e.g. "mp3".
	Format string `json:"format"`

	// TrackNumber, Duration (milliseconds), Size (bytes), Bitrate
	// (kbit/s) and Year are -1 when the server omitted the field.
	TrackNumber int `json:"track_number"`
	Duration    int `json:"duration_ms"`
	Size        int `json:"size_bytes"`
	Bitrate     int `json:"bitrate_kbps"`
	Year        int `json:"year"`
}

// itemFromChunk maps one mlit container onto a MediaItem. addr and
// session feed the item's ID and stream URI. Any malformed field chunk
// fails the whole item.
func itemFromChunk(chunk dmap.Chunk, addr string, session int) (MediaItem, error) {
	itemID, err := chunk.IntField(dmap.TagItemID)
	if err != nil {
		return MediaItem{}, err
	}
	format, err := chunk.TextField(dmap.TagSongFormat)
	if err != nil {
		return MediaItem{}, err
	}

	item := MediaItem{
		ID:     fmt.Sprintf("%d-%d", session, itemID),
		URI:    streamURI(addr, itemID, format, session),
		Format: format,
	}
	if item.Title, err = chunk.TextField(dmap.TagItemName); err != nil {
		return MediaItem{}, err
	}
	if item.Album, err = chunk.TextField(dmap.TagSongAlbum); err != nil {
		return MediaItem{}, err
	}
	if item.Artist, err = chunk.TextField(dmap.TagSongArtist); err != nil {
		return MediaItem{}, err
	}
	if item.Genre, err = chunk.TextField(dmap.TagSongGenre); err != nil {
		return MediaItem{}, err
	}
	if item.TrackNumber, err = chunk.IntField(dmap.TagSongTrackNumber); err != nil {
		return MediaItem{}, err
	}
	if item.Duration, err = chunk.IntField(dmap.TagSongTime); err != nil {
		return MediaItem{}, err
	}
	if item.Size, err = chunk.IntField(dmap.TagSongSize); err != nil {
		return MediaItem{}, err
	}

	// Bitrate and year ride the upper 16 bits of their chunks. The
	// arithmetic shift keeps the -1 absent sentinel intact.
	if item.Bitrate, err = chunk.IntField(dmap.TagSongBitRate); err != nil {
		return MediaItem{}, err
	}
	item.Bitrate >>= 16
	if item.Year, err = chunk.IntField(dmap.TagSongYear); err != nil {
		return MediaItem{}, err
	}
	item.Year >>= 16

	return item, nil
}

// streamURI builds the URL of an item's raw media stream. An absent
// format leaves the extension (and its dot) off entirely.
func streamURI(addr string, itemID int, format string, session int) string {
	if format == "" {
		return fmt.Sprintf("http://%s/databases/1/items/%d?session-id=%d", addr, itemID, session)
	}
	return fmt.Sprintf("http://%s/databases/1/items/%d.%s?session-id=%d", addr, itemID, format, session)
}
