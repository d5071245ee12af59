// Package ui implements the terminal application: a watchlist dashboard, the
// candlestick chart view and an add-ticker input mode, driven by bubbletea.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"CandleGlass/internal/feed"
	"CandleGlass/internal/model"
	"CandleGlass/internal/store"
)

// Screen identifies the active view.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenChart
	ScreenInput
)

const fetchTimeout = 30 * time.Second

// Messages delivered by background fetch commands.
type seriesLoadedMsg struct {
	index  int
	series *model.Series
	name   string
	stale  bool
}

type loadFailedMsg struct {
	index  int
	symbol string
	err    error
}

type tickerAddedMsg struct {
	symbol string
	name   string
	series *model.Series
}

type addFailedMsg struct {
	symbol string
	err    error
}

// RefreshMsg asks the model to reload every watchlist entry. The cron
// refresher sends it through Program.Send.
type RefreshMsg struct{}

// Model is the bubbletea application state.
type Model struct {
	fetcher feed.Fetcher
	store   *store.Store // nil when persistence is disabled

	watchlist []model.WatchlistItem
	selected  int
	screen    Screen
	interval  model.Interval
	lineView  bool

	confirmQuit   bool
	confirmDelete bool

	pending    int // in-flight fetches
	loadingMsg string
	lastErr    string

	input textinput.Model
	spin  spinner.Model
	keys  KeyMap

	width  int
	height int
}

// New creates the application model. The store may be nil.
func New(fetcher feed.Fetcher, st *store.Store, watchlist []model.WatchlistItem, interval model.Interval) Model {
	ti := textinput.New()
	ti.Placeholder = "ticker symbol"
	ti.CharLimit = 12
	ti.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))

	m := Model{
		fetcher:   fetcher,
		store:     st,
		watchlist: watchlist,
		interval:  interval,
		input:     ti,
		spin:      sp,
		keys:      DefaultKeyMap(),
	}
	// Init fires one load per entry; account for them up front.
	m.pending = len(watchlist)
	if m.pending > 0 {
		m.loadingMsg = "Loading watchlist..."
	}
	return m
}

// Init kicks off the initial load of every watchlist entry.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for i := range m.watchlist {
		cmds = append(cmds, m.loadSeriesCmd(i, m.watchlist[i].Symbol, m.interval))
	}
	return tea.Batch(cmds...)
}

// loadSeriesCmd fetches a series in the background. On feed failure it falls
// back to the cached copy when one exists.
func (m Model) loadSeriesCmd(index int, symbol string, interval model.Interval) tea.Cmd {
	fetcher, st := m.fetcher, m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		series, name, err := fetcher.FetchSeries(ctx, symbol, interval)
		if err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("fetch failed")
			if st != nil {
				cached, cerr := st.LoadSeries(symbol, interval)
				if cerr == nil && cached != nil {
					log.Warn().Str("symbol", symbol).Msg("serving stale cached series")
					return seriesLoadedMsg{index: index, series: cached, stale: true}
				}
			}
			return loadFailedMsg{index: index, symbol: symbol, err: err}
		}
		if st != nil {
			if serr := st.SaveSeries(series); serr != nil {
				log.Warn().Err(serr).Str("symbol", symbol).Msg("cache write failed")
			}
		}
		return seriesLoadedMsg{index: index, series: series, name: name}
	}
}

// addTickerCmd fetches data for a new symbol before it joins the watchlist.
func (m Model) addTickerCmd(symbol string) tea.Cmd {
	fetcher, st, interval := m.fetcher, m.store, m.interval
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		series, name, err := fetcher.FetchSeries(ctx, symbol, interval)
		if err != nil {
			return addFailedMsg{symbol: symbol, err: err}
		}
		// Cache immediately so the new symbol has a stale fallback before
		// its first refresh.
		if st != nil {
			if serr := st.SaveSeries(series); serr != nil {
				log.Warn().Err(serr).Str("symbol", symbol).Msg("cache write failed")
			}
		}
		if name == "" {
			name = symbol
		}
		return tickerAddedMsg{symbol: symbol, name: name, series: series}
	}
}

// Update is the single event handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case seriesLoadedMsg:
		m.pending--
		if msg.index >= 0 && msg.index < len(m.watchlist) {
			item := &m.watchlist[msg.index]
			item.Series = msg.series
			if msg.name != "" && (item.Name == "" || item.Name == item.Symbol) {
				item.Name = msg.name
			}
		}
		if msg.stale {
			m.lastErr = "feed unreachable, showing cached data"
		} else {
			m.lastErr = ""
		}
		if m.pending <= 0 {
			m.pending = 0
			m.loadingMsg = ""
		}
		return m, nil

	case loadFailedMsg:
		m.pending--
		if m.pending <= 0 {
			m.pending = 0
			m.loadingMsg = ""
		}
		m.lastErr = "load " + msg.symbol + ": " + msg.err.Error()
		return m, nil

	case tickerAddedMsg:
		m.pending--
		if m.pending <= 0 {
			m.pending = 0
			m.loadingMsg = ""
		}
		m.watchlist = append(m.watchlist, model.WatchlistItem{
			Symbol: msg.symbol,
			Name:   msg.name,
			Series: msg.series,
		})
		m.persistWatchlist()
		m.lastErr = ""
		return m, nil

	case addFailedMsg:
		m.pending--
		if m.pending <= 0 {
			m.pending = 0
			m.loadingMsg = ""
		}
		m.lastErr = "add " + msg.symbol + ": " + msg.err.Error()
		return m, nil

	case RefreshMsg:
		return m.refreshAll()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// refreshAll reloads every watchlist entry at the current interval.
func (m Model) refreshAll() (tea.Model, tea.Cmd) {
	if len(m.watchlist) == 0 {
		return m, nil
	}
	cmds := []tea.Cmd{m.spin.Tick}
	for i := range m.watchlist {
		m.pending++
		cmds = append(cmds, m.loadSeriesCmd(i, m.watchlist[i].Symbol, m.interval))
	}
	m.loadingMsg = "Refreshing watchlist..."
	log.Info().Int("tickers", len(m.watchlist)).Msg("refreshing watchlist")
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Input mode swallows everything except escape and enter.
	if m.screen == ScreenInput {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.screen = ScreenDashboard
			m.input.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			symbol := strings.ToUpper(strings.TrimSpace(m.input.Value()))
			m.screen = ScreenDashboard
			m.input.Blur()
			if symbol == "" {
				return m, nil
			}
			log.Info().Str("symbol", symbol).Msg("adding ticker")
			m.pending++
			m.loadingMsg = "Adding " + symbol + "..."
			return m, tea.Batch(m.addTickerCmd(symbol), m.spin.Tick)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		// Two-step confirmation guards against accidental quits.
		if m.confirmQuit {
			log.Info().Msg("quit confirmed")
			return m, tea.Quit
		}
		m.confirmQuit = true
		return m, nil

	case key.Matches(msg, m.keys.Delete) && m.screen == ScreenDashboard:
		if len(m.watchlist) == 0 {
			return m, nil
		}
		if m.confirmDelete {
			m.deleteSelected()
			m.confirmDelete = false
			return m, nil
		}
		m.confirmDelete = true
		return m, nil

	case key.Matches(msg, m.keys.Add) && m.screen == ScreenDashboard:
		m.cancelConfirmations()
		m.screen = ScreenInput
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up) && m.screen == ScreenDashboard:
		m.cancelConfirmations()
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down) && m.screen == ScreenDashboard:
		m.cancelConfirmations()
		if m.selected < len(m.watchlist)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter) && m.screen == ScreenDashboard:
		m.cancelConfirmations()
		if len(m.watchlist) > 0 {
			log.Info().Str("symbol", m.watchlist[m.selected].Symbol).Msg("opening chart")
			m.screen = ScreenChart
		}
		return m, nil

	case key.Matches(msg, m.keys.Back) && m.screen == ScreenChart:
		m.cancelConfirmations()
		m.screen = ScreenDashboard
		return m, nil

	case key.Matches(msg, m.keys.NextInterval) && m.screen == ScreenChart:
		m.cancelConfirmations()
		m.interval = m.interval.Next()
		return m.reloadSelected()

	case key.Matches(msg, m.keys.PrevInterval) && m.screen == ScreenChart:
		m.cancelConfirmations()
		m.interval = m.interval.Prev()
		return m.reloadSelected()

	case key.Matches(msg, m.keys.ToggleLine) && m.screen == ScreenChart:
		m.lineView = !m.lineView
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.cancelConfirmations()
		return m.refreshAll()
	}

	// Any other key cancels pending confirmations.
	m.cancelConfirmations()
	return m, nil
}

func (m *Model) cancelConfirmations() {
	m.confirmQuit = false
	m.confirmDelete = false
}

func (m *Model) deleteSelected() {
	symbol := m.watchlist[m.selected].Symbol
	m.watchlist = append(m.watchlist[:m.selected], m.watchlist[m.selected+1:]...)
	if m.selected >= len(m.watchlist) && m.selected > 0 {
		m.selected--
	}
	m.persistWatchlist()
	log.Info().Str("symbol", symbol).Msg("ticker deleted")
}

func (m *Model) persistWatchlist() {
	if m.store == nil {
		return
	}
	entries := make([]store.WatchlistEntry, len(m.watchlist))
	for i, item := range m.watchlist {
		entries[i] = store.WatchlistEntry{Symbol: item.Symbol, Name: item.Name}
	}
	if err := m.store.SaveWatchlist(entries); err != nil {
		log.Warn().Err(err).Msg("persist watchlist failed")
	}
}

// reloadSelected refetches the selected ticker at the current interval.
func (m Model) reloadSelected() (tea.Model, tea.Cmd) {
	if len(m.watchlist) == 0 {
		return m, nil
	}
	item := m.watchlist[m.selected]
	m.pending++
	m.loadingMsg = "Loading " + item.Symbol + " at " + m.interval.Label() + "..."
	log.Info().Str("symbol", item.Symbol).Str("interval", m.interval.Label()).Msg("interval change")
	return m, tea.Batch(m.loadSeriesCmd(m.selected, item.Symbol, m.interval), m.spin.Tick)
}

// View routes to the active screen.
func (m Model) View() string {
	switch m.screen {
	case ScreenChart:
		return m.viewChart()
	case ScreenInput:
		return m.viewInput()
	default:
		return m.viewDashboard()
	}
}
