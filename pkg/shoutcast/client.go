package shoutcast

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	baseURL        = "http://api.shoutcast.com"
	requestTimeout = 30 * time.Second

	// DefaultBitrate is the bitrate AdvancedSearch callers pass when they
	// filter by genre quality only, matching the directory's default.
	DefaultBitrate = 128
)

// Client is the HTTP client for the SHOUTcast Radio Directory API. The dev
// key is fixed at construction and embedded as the `k` parameter of every
// request. A Client is safe for concurrent use.
type Client struct {
	client *resty.Client
	key    string
	tuneIn TuneIn
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host. Used by tests and
// proxies.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.client.SetBaseURL(url) }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.SetTimeout(d) }
}

// WithTuneInBase overrides the fallback tunein base used when a response
// carries no tunein element of its own.
func WithTuneInBase(tunein TuneIn) Option {
	return func(c *Client) { c.tuneIn = tunein }
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a directory client with sensible defaults for the
// given dev key.
func NewClient(key string, opts ...Option) *Client {
	c := &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout),
		key: key,
		tuneIn: TuneIn{
			Base:     DefaultTuneInBase,
			BaseM3U:  DefaultTuneInBaseM3U,
			BaseXSPF: DefaultTuneInBaseXSPF,
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Top500 fetches the directory's top 500 stations. Results can be
// restricted with the optional filters; pass nil for the API defaults.
func (c *Client) Top500(opts *SearchOptions) (*StationList, error) {
	endpoint := fmt.Sprintf("/legacy/Top500?k=%s", c.key)
	endpoint += opts.encode()

	return c.getXML(endpoint)
}

// SearchByKeyword returns the stations matching the keyword searched on
// the directory. The search text is required.
func (c *Client) SearchByKeyword(search string, opts *SearchOptions) (*StationList, error) {
	search = cleanQuery(search)
	if search == "" {
		return nil, invalidArgument("search query is required")
	}

	endpoint := fmt.Sprintf("/legacy/stationsearch?k=%s&search=%s", c.key, search)
	endpoint += opts.encode()

	return c.getXML(endpoint)
}

// SearchByGenre returns the stations matching the given genre. The genre
// text is required.
func (c *Client) SearchByGenre(genre string, opts *SearchOptions) (*StationList, error) {
	genre = cleanQuery(genre)
	if genre == "" {
		return nil, invalidArgument("genre is required")
	}

	endpoint := fmt.Sprintf("/legacy/stationsearch?k=%s&search=%s", c.key, genre)
	endpoint += opts.encode()

	return c.getXML(endpoint)
}

// SearchByNowPlaying returns the stations whose now-playing track matches
// the query. Multiple artists can be queried in one call by joining up to
// ten terms with "||"; the cap is the API's and is not enforced here.
func (c *Client) SearchByNowPlaying(query string, opts *SearchOptions) (*StationList, error) {
	query = cleanQuery(query)
	if query == "" {
		return nil, invalidArgument("now playing query is required")
	}

	endpoint := fmt.Sprintf("/station/nowplaying?k=%s&ct=%s&f=json", c.key, query)
	endpoint += opts.encode()

	return c.getJSON(endpoint)
}

// AdvancedSearch returns the stations matching a bitrate, a numeric genre
// ID, or both. At least one of the two must be non-zero; DefaultBitrate is
// the conventional bitrate filter.
func (c *Client) AdvancedSearch(bitrate, genreID int, opts *SearchOptions) (*StationList, error) {
	if bitrate == 0 && genreID == 0 {
		return nil, invalidArgument("bitrate or genre id is required")
	}

	endpoint := fmt.Sprintf("/station/advancedsearch?k=%s&f=json", c.key)
	filters := SearchOptions{Bitrate: bitrate, GenreID: genreID}
	if opts != nil {
		filters.Limit = opts.Limit
		filters.MediaType = opts.MediaType
	}
	endpoint += filters.encode()

	return c.getJSON(endpoint)
}

// RandomStations fetches a random selection of stations, optionally
// restricted by bitrate, genre, or media type.
func (c *Client) RandomStations(opts *SearchOptions) (*StationList, error) {
	endpoint := fmt.Sprintf("/station/randomstations?k=%s&f=json", c.key)
	endpoint += opts.encode()

	return c.getJSON(endpoint)
}

func (c *Client) getXML(endpoint string) (*StationList, error) {
	body, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	return decodeXMLStationList(body, c.tuneIn)
}

func (c *Client) getJSON(endpoint string) (*StationList, error) {
	body, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	return decodeJSONStationList(body, c.tuneIn)
}

func (c *Client) get(endpoint string) ([]byte, error) {
	c.logger.Debug().Str("endpoint", endpoint).Msg("Fetching stations")

	resp, err := c.client.R().Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stations: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("api returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	return resp.Body(), nil
}
