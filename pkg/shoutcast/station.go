// Package shoutcast provides the HTTP client for the SHOUTcast Radio
// Directory API.
package shoutcast

import (
	"fmt"
	"sort"
	"strings"
)

// MediaType identifies the audio format of a station's stream.
type MediaType string

const (
	// MediaTypeMP3 is an MP3 stream (audio/mpeg).
	MediaTypeMP3 MediaType = "audio/mpeg"
	// MediaTypeAAC is an AAC+ stream (audio/aacp).
	MediaTypeAAC MediaType = "audio/aacp"
)

// Station is one radio station entry as cataloged by the directory.
// Field names and casing differ between the XML and JSON API responses;
// both normalize to this one attribute set.
type Station struct {
	ID           int
	Name         string
	CurrentTrack string // Now playing, may be empty
	Genre        string
	AAC          bool // True when the station also serves an AAC stream
	Bitrate      int
	Listeners    int
	MediaType    MediaType
	TuneInPath   string // Station-specific tunein path, when the API provides one
}

// TuneIn holds the directory's base path fragments used to build a
// station's playable stream URLs, one per playlist format.
type TuneIn struct {
	Base     string
	BaseM3U  string
	BaseXSPF string
}

// StationList is the result of one directory query: the tunein base paths
// that were in effect for the response plus the stations, in API order.
// Duplicate stations from the upstream API are passed through as-is.
type StationList struct {
	TuneIn   TuneIn
	Stations []Station
}

// YPHost is the host serving the tunein playlist endpoints.
const YPHost = "http://yp.shoutcast.com"

// StreamURL returns the playable .pls URL for a station in this list,
// built from the list's tunein base. Returns an empty string when the
// list carries no tunein base.
func (l *StationList) StreamURL(st Station) string {
	if l.TuneIn.Base == "" {
		return ""
	}
	return fmt.Sprintf("%s%s?id=%d", YPHost, l.TuneIn.Base, st.ID)
}

// SortByListeners orders the stations by listener count, most popular
// first. Ties keep their API order.
func (l *StationList) SortByListeners() {
	sort.SliceStable(l.Stations, func(i, j int) bool {
		return l.Stations[i].Listeners > l.Stations[j].Listeners
	})
}

// GenreList returns the station's pipe-separated genre field split into
// individual genres, with empty entries removed.
func (s *Station) GenreList() []string {
	parts := strings.Split(s.Genre, "|")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
