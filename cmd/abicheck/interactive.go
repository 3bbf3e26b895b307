package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/winabi/verify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateList modelState = iota
	stateFilter
	stateDetail
)

type interactiveModel struct {
	err      error
	ctx      context.Context
	verifier *verify.Verifier
	filter   textinput.Model
	opts     verify.RunOptions
	results  []verify.Result
	visible  []int
	selected int
	loaded   bool
	state    modelState
}

type reportMsg struct {
	err    error
	report verify.Report
}

func newInteractiveModel(ctx context.Context, v *verify.Verifier, opts verify.RunOptions) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "glob"
	ti.Width = 40
	return &interactiveModel{
		ctx:      ctx,
		verifier: v,
		opts:     opts,
		filter:   ti,
		state:    stateList,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.run
}

func (m *interactiveModel) run() tea.Msg {
	rep, err := verify.Run(m.ctx, m.verifier, m.opts)
	return reportMsg{report: rep, err: err}
}

// applyFilter narrows the visible results to case names matching the
// filter glob. An invalid glob keeps the previous selection.
func (m *interactiveModel) applyFilter() {
	var include []string
	if q := strings.TrimSpace(m.filter.Value()); q != "" {
		include = []string{q}
	}
	match, err := verify.Matcher(include, nil)
	if err != nil {
		return
	}
	m.visible = m.visible[:0]
	for i, r := range m.results {
		if ok, err := match(r.Case); err == nil && ok {
			m.visible = append(m.visible, i)
		}
	}
	m.selected = min(m.selected, max(len(m.visible)-1, 0))
}

func (m *interactiveModel) current() (verify.Result, bool) {
	if m.selected >= len(m.visible) {
		return verify.Result{}, false
	}
	return m.results[m.visible[m.selected]], true
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.err = msg.err
		m.results = msg.report.Results
		m.loaded = true
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateList
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "enter":
			switch m.state {
			case stateList:
				if _, ok := m.current(); ok {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateList
			}

		case "esc":
			m.state = stateList
		}
	}
	return m, nil
}

func statusText(r verify.Result) string {
	switch {
	case r.Skipped:
		return skipStyle.Render("SKIP")
	case r.Failed():
		return failStyle.Render("FAIL")
	}
	return passStyle.Render("ok  ")
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return failStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.loaded {
		return "Running cases..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("abicheck"))
	b.WriteString(" ")
	b.WriteString(m.verifier.Arch().String())
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateFilter:
		for i, idx := range m.visible {
			r := m.results[idx]
			line := statusText(r) + " " + r.Case
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + r.Case))
				b.WriteString(" ")
				b.WriteString(statusText(r))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(m.filter.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter/esc done"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter checks • / filter • q quit"))
		}

	case stateDetail:
		r, _ := m.current()
		b.WriteString(fmt.Sprintf("%s %s\n\n", statusText(r), r.Case))
		switch {
		case r.Skipped:
			b.WriteString(skipStyle.Render(r.SkipReason))
			b.WriteString("\n")
		case r.Err != nil:
			b.WriteString(failStyle.Render(r.Err.Error()))
			b.WriteString("\n")
		}
		for _, c := range r.Checks {
			if c.Passed() {
				b.WriteString(passStyle.Render("  " + c.String()))
			} else {
				b.WriteString(failStyle.Render("  " + c.String()))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}
	return b.String()
}

func runInteractive(ctx context.Context, v *verify.Verifier, opts verify.RunOptions) error {
	p := tea.NewProgram(newInteractiveModel(ctx, v, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	m, err := p.Run()
	if err != nil {
		return err
	}
	if im, ok := m.(*interactiveModel); ok {
		return im.outcome()
	}
	return nil
}

// outcome is the error the program exits with once the model is closed.
func (m *interactiveModel) outcome() error {
	if m.err != nil {
		return m.err
	}
	if !(verify.Report{Results: m.results}).OK() {
		return errFailed
	}
	return nil
}
