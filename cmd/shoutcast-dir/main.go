package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/radiodir/shoutcast/internal/config"
	"github.com/radiodir/shoutcast/internal/ui"
	"github.com/radiodir/shoutcast/pkg/shoutcast"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging")
	keyFlag     = flag.String("key", "", "API dev key (overrides "+config.EnvDevKey+" and the config file)")
	limitFlag   = flag.Int("limit", 0, "Maximum number of stations to return")
	offsetFlag  = flag.Int("offset", 0, "Result offset, used together with -limit")
	brFlag      = flag.Int("br", 0, "Filter stations by bitrate in kbps")
	mtFlag      = flag.String("mt", "", "Filter stations by media type (audio/mpeg or audio/aacp)")
	genreIDFlag = flag.Int("genre-id", 0, "Numeric genre ID for the advanced command")
	genreFlag   = flag.String("genre", "", "Genre filter for the random command")
	sortFlag    = flag.Bool("sort", false, "Sort results by listener count")
	browseFlag  = flag.Bool("browse", false, "Browse results in an interactive table")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s v%s - %s\n\n", config.AppName, config.AppVersion, config.AppDescription)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [query]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  top500              Top 500 stations\n")
		fmt.Fprintf(os.Stderr, "  search <keywords>   Search stations by keyword\n")
		fmt.Fprintf(os.Stderr, "  genre <genre>       Search stations by genre\n")
		fmt.Fprintf(os.Stderr, "  nowplaying <query>  Search by currently playing track (join artists with ||)\n")
		fmt.Fprintf(os.Stderr, "  advanced            Search by -br and/or -genre-id\n")
		fmt.Fprintf(os.Stderr, "  random              Random station selection\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()

		configPath, err := config.GetConfigPath()
		if err == nil {
			fmt.Fprintf(os.Stderr, "\nConfig file: %s\n", configPath)
		}
	}
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v%s\n", config.AppName, config.AppVersion)
		fmt.Println(config.AppDescription)
		os.Exit(0)
	}

	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load config, using defaults")
	}

	key := cfg.ResolveDevKey(*keyFlag)
	if key == "" {
		fmt.Fprintf(os.Stderr, "No dev key: pass -key, set %s, or add dev_key to the config file\n", config.EnvDevKey)
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)
	query := strings.Join(flag.Args()[1:], " ")

	client := shoutcast.NewClient(key, shoutcast.WithLogger(log.Logger))
	list, err := runCommand(client, cfg, command, query)
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("Request failed")
	}

	if *sortFlag {
		list.SortByListeners()
	}

	if *browseFlag {
		browser := ui.NewBrowser(commandTitle(command, query), list)
		if err := browser.Run(); err != nil {
			log.Fatal().Err(err).Msg("Browser failed")
		}
		if url := browser.SelectedStreamURL(); url != "" {
			fmt.Println(url)
		}
		return
	}

	printStations(list)
}

func runCommand(client *shoutcast.Client, cfg *config.Config, command, query string) (*shoutcast.StationList, error) {
	opts := searchOptions(cfg)

	switch command {
	case "top500":
		return client.Top500(opts)
	case "search":
		return client.SearchByKeyword(query, opts)
	case "genre":
		return client.SearchByGenre(query, opts)
	case "nowplaying":
		return client.SearchByNowPlaying(query, opts)
	case "advanced":
		bitrate := opts.Bitrate
		if bitrate == 0 && *genreIDFlag == 0 {
			bitrate = shoutcast.DefaultBitrate
		}
		return client.AdvancedSearch(bitrate, *genreIDFlag, opts)
	case "random":
		opts.Genre = *genreFlag
		return client.RandomStations(opts)
	default:
		flag.Usage()
		os.Exit(2)
		return nil, nil
	}
}

// searchOptions merges the filter flags with the config file defaults;
// flags win.
func searchOptions(cfg *config.Config) *shoutcast.SearchOptions {
	opts := &shoutcast.SearchOptions{
		Bitrate:   cfg.Bitrate,
		MediaType: shoutcast.MediaType(cfg.MediaType),
	}
	if *brFlag != 0 {
		opts.Bitrate = *brFlag
	}
	if *mtFlag != "" {
		opts.MediaType = shoutcast.MediaType(*mtFlag)
	}
	if *limitFlag > 0 {
		opts.Limit = &shoutcast.Limit{Offset: *offsetFlag, Count: *limitFlag}
	} else if *browseFlag && cfg.PageSize > 0 {
		opts.Limit = &shoutcast.Limit{Count: cfg.PageSize}
	}
	return opts
}

func commandTitle(command, query string) string {
	if query == "" {
		return command
	}
	return fmt.Sprintf("%s: %s", command, query)
}

func printStations(list *shoutcast.StationList) {
	if len(list.Stations) == 0 {
		fmt.Println("No stations found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGENRE\tNOW PLAYING\tKBPS\tLISTENERS\tSTREAM")
	for _, st := range list.Stations {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			st.ID,
			st.Name,
			strings.Join(st.GenreList(), ", "),
			st.CurrentTrack,
			st.Bitrate,
			st.Listeners,
			list.StreamURL(st),
		)
	}
	_ = w.Flush()
}
