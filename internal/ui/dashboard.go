package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"CandleGlass/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	selectedStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	gainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D058"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EA4A5A"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAB70"))
)

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" CandleGlass"))
	b.WriteString(dimStyle.Render("  watchlist"))
	b.WriteString("\n\n")

	if len(m.watchlist) == 0 {
		b.WriteString(dimStyle.Render("  watchlist empty, press a to add a ticker"))
		b.WriteString("\n")
	}

	for i, item := range m.watchlist {
		row := m.dashboardRow(item)
		if i == m.selected {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" ↑/↓ select  enter chart  a add  d delete  r refresh  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) dashboardRow(item model.WatchlistItem) string {
	price := "-"
	change := dimStyle.Render("-")
	volume := "-"
	if p, ok := item.CurrentPrice(); ok {
		price = fmt.Sprintf("%.2f", p)
	}
	if pct, ok := item.ChangePercent(); ok {
		text := fmt.Sprintf("%+.2f%%", pct)
		if item.IsPositive() {
			change = gainStyle.Render(text)
		} else {
			change = lossStyle.Render(text)
		}
	}
	if v, ok := item.Volume(); ok {
		volume = humanize.SIWithDigits(v, 1, "")
	}
	// Truncate on runes: provider names can carry multibyte characters.
	name := item.Name
	if r := []rune(name); len(r) > 20 {
		name = string(r[:20])
	}
	return fmt.Sprintf(" %-8s %-20s %12s  %-8s  %s", item.Symbol, name, price, change, volume)
}

func (m Model) statusLine() string {
	switch {
	case m.confirmQuit:
		return warnStyle.Render(" press q again to quit")
	case m.confirmDelete:
		return warnStyle.Render(" press d again to delete")
	case m.pending > 0:
		return " " + m.spin.View() + dimStyle.Render(m.loadingMsg)
	case m.lastErr != "":
		return lossStyle.Render(" " + m.lastErr)
	}
	return ""
}

func (m Model) viewInput() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Add ticker"))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(" enter confirm  esc cancel"))
	b.WriteString("\n")
	return b.String()
}
