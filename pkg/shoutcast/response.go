package shoutcast

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
)

// Default tunein bases, used when a response carries no tunein element of
// its own. These are the directory's published playlist endpoints.
const (
	DefaultTuneInBase     = "/sbin/tunein-station.pls"
	DefaultTuneInBaseM3U  = "/sbin/tunein-station.m3u"
	DefaultTuneInBaseXSPF = "/sbin/tunein-station.xspf"
)

// rawStation is one station record as the API serves it. The XML endpoints
// put the fields in element attributes, the JSON endpoints in plain keys;
// the tags carry both mappings so a single normalization path serves both.
type rawStation struct {
	ID           int    `xml:"id,attr" json:"id"`
	Name         string `xml:"name,attr" json:"name"`
	CurrentTrack string `xml:"ct,attr" json:"ct"`
	Genre        string `xml:"genre,attr" json:"genre"`
	AAC          int    `xml:"aac,attr" json:"aac"`
	Bitrate      int    `xml:"br,attr" json:"br"`
	Listeners    int    `xml:"lc,attr" json:"lc"`
	MediaType    string `xml:"mt,attr" json:"mt"`
	TuneInPath   string `xml:"tunein,attr" json:"tunein"`
}

func (r rawStation) toStation() Station {
	return Station{
		ID:           r.ID,
		Name:         r.Name,
		CurrentTrack: r.CurrentTrack,
		Genre:        r.Genre,
		AAC:          r.AAC != 0,
		Bitrate:      r.Bitrate,
		Listeners:    r.Listeners,
		MediaType:    MediaType(r.MediaType),
		TuneInPath:   r.TuneInPath,
	}
}

type rawTuneIn struct {
	Base     string `xml:"base,attr" json:"base"`
	BaseM3U  string `xml:"base-m3u,attr" json:"base-m3u"`
	BaseXSPF string `xml:"base-xspf,attr" json:"base-xspf"`
}

type xmlStationList struct {
	XMLName  xml.Name     `xml:"stationlist"`
	TuneIn   rawTuneIn    `xml:"tunein"`
	Stations []rawStation `xml:"station"`
}

type jsonEnvelope struct {
	StationList jsonStationList `json:"stationlist"`
}

type jsonStationList struct {
	TuneIn  rawTuneIn         `json:"tunein"`
	Station stationCollection `json:"station"`
}

// collectionShape classifies the JSON "station" value, which the API
// serves as absent, a single object, or an array of objects.
type collectionShape int

const (
	shapeEmpty collectionShape = iota
	shapeSingle
	shapeMany
)

// stationCollection decodes the "station" value of a JSON station list.
// The shape is classified once from the leading token; afterwards items
// always holds the records in API order, whatever the wire shape was.
type stationCollection struct {
	shape collectionShape
	items []rawStation
}

func (c *stationCollection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		c.shape = shapeEmpty
		return nil
	}

	switch data[0] {
	case '[':
		var items []rawStation
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			c.shape = shapeEmpty
			return nil
		}
		c.shape = shapeMany
		c.items = items
	case '{':
		var item rawStation
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		c.shape = shapeSingle
		c.items = []rawStation{item}
	case '"':
		// The API answers some empty result sets with an empty string.
		c.shape = shapeEmpty
	default:
		return fmt.Errorf("unexpected station collection shape: %s", data)
	}
	return nil
}

// newStationList normalizes raw records from either origin into a
// StationList. A response without a tunein element falls back to the
// caller-provided base paths; an empty record slice is a valid result.
func newStationList(tunein rawTuneIn, raws []rawStation, fallback TuneIn) *StationList {
	list := &StationList{
		TuneIn: TuneIn{
			Base:     tunein.Base,
			BaseM3U:  tunein.BaseM3U,
			BaseXSPF: tunein.BaseXSPF,
		},
		Stations: make([]Station, 0, len(raws)),
	}
	if list.TuneIn.Base == "" {
		list.TuneIn = fallback
	}
	for _, raw := range raws {
		list.Stations = append(list.Stations, raw.toStation())
	}
	return list
}

func decodeXMLStationList(body []byte, fallback TuneIn) (*StationList, error) {
	var envelope xmlStationList
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse station list response: %w", err)
	}
	return newStationList(envelope.TuneIn, envelope.Stations, fallback), nil
}

func decodeJSONStationList(body []byte, fallback TuneIn) (*StationList, error) {
	var envelope jsonEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse station list response: %w", err)
	}
	return newStationList(envelope.StationList.TuneIn, envelope.StationList.Station.items, fallback), nil
}
