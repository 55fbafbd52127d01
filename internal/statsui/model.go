// Package statsui provides the Bubble Tea session-history interface.
package statsui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calvike/fovea/internal/model"
	"github.com/calvike/fovea/internal/stats"
	"github.com/calvike/fovea/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	sparkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea session-history UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	sessions []model.SessionAggregate
	summary  stats.Summary
	errMsg   string

	sessionTable table.Model

	width  int
	height int
}

// NewModel constructs the stats UI model and loads session history.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{store: st, cfg: cfg}
	m.reload()
	return m
}

func (m *Model) reload() {
	sessions, err := m.store.ListSessions(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load sessions: %v", err)
		return
	}
	m.sessions = sessions
	m.summary = stats.Summarize(sessions)
	m.sessionTable = buildSessionTable(sessions)
}

func buildSessionTable(sessions []model.SessionAggregate) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Source", Width: 28},
		{Title: "Words", Width: 7},
		{Title: "WPM", Width: 6},
		{Title: "Duration", Width: 9},
		{Title: "Done", Width: 5},
	}
	rows := make([]table.Row, 0, len(sessions))
	// Newest first for browsing.
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		wpm, _ := stats.SessionMetrics(s.WordsRead, s.Words, s.DurationMs)
		done := ""
		if s.Completed {
			done = "yes"
		}
		rows = append(rows, table.Row{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			truncateSource(s.Source, 28),
			fmt.Sprintf("%d", s.WordsRead),
			fmt.Sprintf("%.0f", wpm),
			formatDuration(s.DurationMs),
			done,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	t.SetStyles(styles)
	return t
}

func truncateSource(source string, width int) string {
	if len(source) <= width {
		return source
	}
	return "…" + source[len(source)-width+1:]
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.reload()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.sessionTable, cmd = m.sessionTable.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg) + "\n"
	}
	if len(m.sessions) == 0 {
		return headerStyle.Render("No reading sessions recorded yet.") + "\n"
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Sessions", fmt.Sprintf("%d", m.summary.Sessions)),
		card("Words read", fmt.Sprintf("%d", m.summary.WordsRead)),
		card("Avg WPM", fmt.Sprintf("%.0f", m.summary.AvgWPM)),
		card("Best WPM", fmt.Sprintf("%.0f", m.summary.BestWPM)),
		card("Time", formatDuration(m.summary.TotalMs)),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")
	if curve := stats.Sparkline(m.summary.SpeedCurve); curve != "" {
		b.WriteString(headerStyle.Render("Speed  "))
		b.WriteString(sparkStyle.Render(curve))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.sessionTable.View())
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("q quit · r reload · ↑/↓ browse"))
	return b.String()
}

func card(title, value string) string {
	return cardStyle.Render(
		cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value),
	)
}
