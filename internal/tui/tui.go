// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui shows the comparison table in the terminal, with a live
// filter over the test cases.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uibench/resultview/benchtab"
	"github.com/uibench/resultview/report"
	"github.com/uibench/resultview/store"
)

// A Loader fetches the current reports.
type Loader func(ctx context.Context) ([]*report.Report, error)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
}

type (
	reportsMsg struct {
		reports []*report.Report
		err     error
	}
	refreshMsg struct{}
)

// headerHeight is the number of lines above the table.
const headerHeight = 3

// Model is the bubbletea model of the table view.
type Model struct {
	store    *store.Store
	load     Loader
	interval time.Duration

	input    textinput.Model
	viewport viewport.Model
	table    *benchtab.Table
	err      error
}

// New returns a model showing reports. If load is non-nil, the model
// replaces its reports with the result of load when it starts and,
// if interval is positive, every interval after that.
func New(reports []*report.Report, load Loader, interval time.Duration) Model {
	s := store.New()
	for _, r := range reports {
		s.Update(r)
	}

	ti := textinput.New()
	ti.Prompt = "filter> "
	ti.Placeholder = "for example: render"
	ti.CharLimit = 128
	ti.Focus()

	m := Model{
		store:    s,
		load:     load,
		interval: interval,
		input:    ti,
		viewport: viewport.New(120, 40),
	}
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		reports, err := load(context.Background())
		return reportsMsg{reports, err}
	}
}

// Filter returns the current filter.
func (m Model) Filter() string { return m.input.Value() }

// Table returns the table on display, or nil if it could not be
// built.
func (m Model) Table() *benchtab.Table { return m.table }

// Err returns the last build or load error.
func (m Model) Err() error { return m.err }

func (m *Model) rebuild() {
	reports, names := m.store.Snapshot()
	t, err := benchtab.Build(reports, names, benchtab.Options{Filter: m.input.Value()})
	if err != nil {
		m.table, m.err = nil, err
		m.viewport.SetContent("")
		return
	}
	var b strings.Builder
	if len(t.Columns) == 0 {
		b.WriteString("Empty\n")
	} else if err := t.ToText(&b, true); err != nil {
		m.table, m.err = nil, err
		return
	}
	m.table, m.err = t, nil
	m.viewport.SetContent(b.String())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		return m, nil

	case reportsMsg:
		var next tea.Cmd
		if m.interval > 0 {
			next = tea.Tick(m.interval, func(time.Time) tea.Msg { return refreshMsg{} })
		}
		if msg.err != nil {
			m.err = msg.err
			return m, next
		}
		m.store = store.New()
		for _, r := range msg.reports {
			m.store.Update(r)
		}
		m.rebuild()
		return m, next

	case refreshMsg:
		if m.load == nil {
			return m, nil
		}
		return m, m.fetch()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.viewport.LineUp(1)
			return m, nil
		case key.Matches(msg, keys.Down):
			m.viewport.LineDown(1)
			return m, nil
		case key.Matches(msg, keys.PageUp):
			m.viewport.ViewUp()
			return m, nil
		case key.Matches(msg, keys.PageDown):
			m.viewport.ViewDown()
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.rebuild()
		m.viewport.GotoTop()
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("UI Benchmark Results"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render("esc quit, ↑/↓ scroll"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.viewport.View())
	return b.String()
}

// Run shows the model until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
