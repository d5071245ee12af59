package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"CandleGlass/internal/config"
	"CandleGlass/internal/feed"
	"CandleGlass/internal/model"
	"CandleGlass/internal/store"
	"CandleGlass/internal/ui"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "candleglass is an interactive terminal app and needs a TTY")
		os.Exit(1)
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	// Stdout belongs to the TUI, so logs go to a file.
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(logFile).Level(level).With().Timestamp().Logger()
	log.Info().Msg("CandleGlass starting")

	var st *store.Store
	if cfg.Database.SQLitePath != "" {
		st, err = store.Open(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("open store failed, running without cache")
			st = nil
		} else {
			defer st.Close()
		}
	}

	var fetcher feed.Fetcher
	if cfg.DataSource.Mock {
		fetcher = &feed.MockFetcher{}
	} else {
		fetcher = feed.NewYahooFetcher(cfg.DataSource.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source selected")

	watchlist := loadWatchlist(cfg, st)

	app := ui.New(fetcher, st, watchlist, cfg.DefaultInterval())
	p := tea.NewProgram(app, tea.WithAltScreen())

	var refresher *feed.Refresher
	if cfg.Refresh.Enabled {
		refresher, err = feed.NewRefresher(cfg.Refresh.Cron, func() {
			p.Send(ui.RefreshMsg{})
		})
		if err != nil {
			log.Warn().Err(err).Msg("invalid refresh schedule, auto refresh disabled")
		} else {
			refresher.Start()
			defer refresher.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("CandleGlass stopped")
}

// loadWatchlist prefers the persisted watchlist and falls back to the
// configured tickers on first run.
func loadWatchlist(cfg *config.Config, st *store.Store) []model.WatchlistItem {
	if st != nil {
		entries, err := st.LoadWatchlist()
		if err != nil {
			log.Warn().Err(err).Msg("load watchlist failed")
		} else if len(entries) > 0 {
			items := make([]model.WatchlistItem, len(entries))
			for i, e := range entries {
				items[i] = model.WatchlistItem{Symbol: e.Symbol, Name: e.Name}
			}
			return items
		}
	}
	items := make([]model.WatchlistItem, len(cfg.Watchlist))
	for i, t := range cfg.Watchlist {
		name := t.Name
		if name == "" {
			name = t.Symbol
		}
		items[i] = model.WatchlistItem{Symbol: t.Symbol, Name: name}
	}
	return items
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
