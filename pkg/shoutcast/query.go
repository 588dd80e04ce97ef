package shoutcast

import (
	"strconv"
	"strings"
)

// Limit restricts how many results a query returns and from what starting
// position.
type Limit struct {
	Offset int
	Count  int
}

// SearchOptions are the optional filters shared by the directory
// operations. Zero values mean "unset" and are omitted from the request.
type SearchOptions struct {
	// Limit restricts the result window; nil returns the API default.
	Limit *Limit
	// Bitrate filters stations by the exact bitrate, in kbps.
	Bitrate int
	// MediaType filters stations by stream format.
	MediaType MediaType
	// GenreID filters stations by the directory's numeric genre ID.
	// Only honored by AdvancedSearch.
	GenreID int
	// Genre filters stations by genre name. Only honored by RandomStations.
	Genre string
}

// encode renders the options as a query-string suffix to append to an
// endpoint that already carries its own query parameters. Unset filters
// are omitted entirely. Returns an empty string when nothing is set.
func (o *SearchOptions) encode() string {
	if o == nil {
		return ""
	}

	var b strings.Builder
	if o.Limit != nil {
		b.WriteString("&offset=")
		b.WriteString(strconv.Itoa(o.Limit.Offset))
		b.WriteString("&limit=")
		b.WriteString(strconv.Itoa(o.Limit.Count))
	}
	if o.Bitrate != 0 {
		b.WriteString("&br=")
		b.WriteString(strconv.Itoa(o.Bitrate))
	}
	if o.MediaType != "" {
		b.WriteString("&mt=")
		b.WriteString(string(o.MediaType))
	}
	if o.GenreID != 0 {
		b.WriteString("&genre_id=")
		b.WriteString(strconv.Itoa(o.GenreID))
	}
	if o.Genre != "" {
		b.WriteString("&genre=")
		b.WriteString(cleanQuery(o.Genre))
	}
	return b.String()
}

// cleanQuery prepares a free-text query value for embedding: leading and
// trailing whitespace is stripped and inner spaces become '+'. The API
// expects no further escaping.
func cleanQuery(q string) string {
	return strings.ReplaceAll(strings.TrimSpace(q), " ", "+")
}
