// Package tui implements an interactive palette browser: every label of
// the build theme with its swatch and hex value, navigable from the
// keyboard, with clipboard copy of the focused entry.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/sigmaSd/deno-doc/internal/tailwind"
	"github.com/sigmaSd/deno-doc/internal/theme"
)

type paletteRow struct {
	label string
	hex   string
}

type model struct {
	rows       []paletteRow
	cursor     int
	offset     int
	width      int
	height     int
	labelWidth int
	keys       KeyMap
	status     string
	quitting   bool
}

// copyToClipboard is a package var so tests can stub the clipboard out.
var copyToClipboard = clipboard.WriteAll

// NewModel builds the browser over a configuration's color table,
// one row per label in sorted order.
func NewModel(cfg tailwind.Config) tea.Model {
	colors := cfg.Theme.Extend.Colors
	labels := theme.Labels(colors)

	rows := make([]paletteRow, 0, len(labels))
	labelWidth := 0
	for _, label := range labels {
		rows = append(rows, paletteRow{label: label, hex: colors[label]})
		if w := runewidth.StringWidth(label); w > labelWidth {
			labelWidth = w
		}
	}

	return model{
		rows:       rows,
		labelWidth: labelWidth,
		keys:       DefaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.status = ""
			m.clampScroll()

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.status = ""
			m.clampScroll()

		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
			m.status = ""
			m.clampScroll()

		case key.Matches(msg, m.keys.End):
			m.cursor = len(m.rows) - 1
			m.status = ""
			m.clampScroll()

		case key.Matches(msg, m.keys.Copy):
			row := m.rows[m.cursor]
			if err := copyToClipboard(row.hex); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = fmt.Sprintf("copied %s (%s)", row.hex, row.label)
			}
		}
		return m, nil
	}

	return m, nil
}

// visibleRows is the number of palette rows that fit between the title
// and the status bar.
func (m *model) visibleRows() int {
	if m.height == 0 {
		return len(m.rows)
	}
	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m *model) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Build theme palette (%d entries)", len(m.rows))))
	b.WriteString("\n")

	end := m.offset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		label := row.label + strings.Repeat(" ", m.labelWidth-runewidth.StringWidth(row.label))
		line := fmt.Sprintf("%s  %s  %s",
			swatchStyle(row.hex).Render("██"),
			label,
			hexStyle.Render(row.hex),
		)
		if i == m.cursor {
			b.WriteString(rowSelectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	status := m.status
	if status == "" {
		status = helpLine(m.keys)
	}
	b.WriteString(statusBarStyle.Render(status))
	return b.String()
}

func helpLine(keys KeyMap) string {
	parts := []string{}
	for _, binding := range []key.Binding{keys.Up, keys.Down, keys.Copy, keys.Quit} {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, " · ")
}

// Run starts the browser in the alternate screen.
func Run(cfg tailwind.Config, isDarkMode bool) error {
	Initialize(isDarkMode)
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
