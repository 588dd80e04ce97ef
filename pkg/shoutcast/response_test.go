package shoutcast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTuneIn = TuneIn{
	Base:     DefaultTuneInBase,
	BaseM3U:  DefaultTuneInBaseM3U,
	BaseXSPF: DefaultTuneInBaseXSPF,
}

func TestDecodeJSONStationListEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"stationlist without station key", `{"stationlist": {}}`},
		{"null station", `{"stationlist": {"station": null}}`},
		{"empty array", `{"stationlist": {"station": []}}`},
		{"empty string", `{"stationlist": {"station": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := decodeJSONStationList([]byte(tt.body), testTuneIn)

			require.NoError(t, err)
			assert.Empty(t, list.Stations)
			assert.Equal(t, testTuneIn, list.TuneIn)
		})
	}
}

func TestDecodeJSONStationListSingleRecord(t *testing.T) {
	body := `{"stationlist": {"station": {"id": 1, "name": "X"}}}`

	list, err := decodeJSONStationList([]byte(body), testTuneIn)

	require.NoError(t, err)
	require.Len(t, list.Stations, 1)
	assert.Equal(t, 1, list.Stations[0].ID)
	assert.Equal(t, "X", list.Stations[0].Name)
}

func TestDecodeJSONStationListManyRecords(t *testing.T) {
	body := `{
		"stationlist": {
			"tunein": {"base": "/sbin/tunein-station.pls"},
			"station": [
				{"id": 1, "name": "First", "ct": "Track A", "genre": "Pop", "br": 128, "lc": 300, "mt": "audio/mpeg"},
				{"id": 2, "name": "Second", "ct": "Track B", "genre": "Jazz", "br": 64, "lc": 12, "mt": "audio/aacp", "aac": 1}
			]
		}
	}`

	list, err := decodeJSONStationList([]byte(body), testTuneIn)

	require.NoError(t, err)
	require.Len(t, list.Stations, 2)

	assert.Equal(t, 1, list.Stations[0].ID)
	assert.Equal(t, "First", list.Stations[0].Name)
	assert.Equal(t, "Track A", list.Stations[0].CurrentTrack)
	assert.Equal(t, MediaTypeMP3, list.Stations[0].MediaType)
	assert.Equal(t, 300, list.Stations[0].Listeners)
	assert.False(t, list.Stations[0].AAC)

	assert.Equal(t, 2, list.Stations[1].ID)
	assert.Equal(t, MediaTypeAAC, list.Stations[1].MediaType)
	assert.True(t, list.Stations[1].AAC)
}

func TestDecodeJSONStationListInvalid(t *testing.T) {
	_, err := decodeJSONStationList([]byte("not valid json"), testTuneIn)

	assert.Error(t, err)
}

func TestStationCollectionShape(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		shape collectionShape
		count int
	}{
		{"absent", `{"stationlist": {}}`, shapeEmpty, 0},
		{"single object", `{"stationlist": {"station": {"id": 7}}}`, shapeSingle, 1},
		{"array of one", `{"stationlist": {"station": [{"id": 7}]}}`, shapeMany, 1},
		{"array of three", `{"stationlist": {"station": [{"id": 1}, {"id": 2}, {"id": 3}]}}`, shapeMany, 3},
		{"empty array", `{"stationlist": {"station": []}}`, shapeEmpty, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope jsonEnvelope
			require.NoError(t, json.Unmarshal([]byte(tt.body), &envelope))

			assert.Equal(t, tt.shape, envelope.StationList.Station.shape)
			assert.Len(t, envelope.StationList.Station.items, tt.count)
		})
	}
}

func TestDecodeXMLStationListManyRecords(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
	<stationlist>
		<tunein base="/sbin/tunein-station.pls" base-m3u="/sbin/tunein-station.m3u" base-xspf="/sbin/tunein-station.xspf"/>
		<station name="First" mt="audio/mpeg" id="1" br="128" genre="Pop" ct="Track A" lc="300"/>
		<station name="Second" mt="audio/aacp" id="2" br="64" genre="Jazz" ct="Track B" lc="12"/>
	</stationlist>`

	list, err := decodeXMLStationList([]byte(body), TuneIn{})

	require.NoError(t, err)
	require.Len(t, list.Stations, 2)
	assert.Equal(t, "/sbin/tunein-station.pls", list.TuneIn.Base)
	assert.Equal(t, "/sbin/tunein-station.m3u", list.TuneIn.BaseM3U)
	assert.Equal(t, "/sbin/tunein-station.xspf", list.TuneIn.BaseXSPF)

	assert.Equal(t, Station{
		ID:           1,
		Name:         "First",
		CurrentTrack: "Track A",
		Genre:        "Pop",
		Bitrate:      128,
		Listeners:    300,
		MediaType:    MediaTypeMP3,
	}, list.Stations[0])
	assert.Equal(t, 2, list.Stations[1].ID)
}

func TestDecodeXMLStationListSingleRecord(t *testing.T) {
	body := `<stationlist>
		<tunein base="/sbin/tunein-station.pls"/>
		<station name="Only" mt="audio/mpeg" id="42" br="96" genre="Ambient" ct="" lc="5"/>
	</stationlist>`

	list, err := decodeXMLStationList([]byte(body), testTuneIn)

	require.NoError(t, err)
	require.Len(t, list.Stations, 1)
	assert.Equal(t, 42, list.Stations[0].ID)
	assert.Equal(t, "Only", list.Stations[0].Name)
	assert.Empty(t, list.Stations[0].CurrentTrack)
}

func TestDecodeXMLStationListEmpty(t *testing.T) {
	body := `<stationlist></stationlist>`

	list, err := decodeXMLStationList([]byte(body), testTuneIn)

	require.NoError(t, err)
	assert.Empty(t, list.Stations)
	assert.Equal(t, testTuneIn, list.TuneIn)
}

func TestDecodeXMLStationListInvalid(t *testing.T) {
	_, err := decodeXMLStationList([]byte("<stationlist><station"), testTuneIn)

	assert.Error(t, err)
}

func TestNewStationListTuneInFallback(t *testing.T) {
	fallback := TuneIn{Base: "/custom/tunein.pls"}

	withOwn := newStationList(rawTuneIn{Base: "/from/response.pls"}, nil, fallback)
	assert.Equal(t, "/from/response.pls", withOwn.TuneIn.Base)

	withFallback := newStationList(rawTuneIn{}, nil, fallback)
	assert.Equal(t, "/custom/tunein.pls", withFallback.TuneIn.Base)
}

func TestNewStationListPreservesOrderAndDuplicates(t *testing.T) {
	raws := []rawStation{{ID: 3}, {ID: 1}, {ID: 3}}

	list := newStationList(rawTuneIn{}, raws, testTuneIn)

	require.Len(t, list.Stations, 3)
	assert.Equal(t, 3, list.Stations[0].ID)
	assert.Equal(t, 1, list.Stations[1].ID)
	assert.Equal(t, 3, list.Stations[2].ID)
}
