package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/winabi/verify"
)

type styles struct {
	pass   lipgloss.Style
	fail   lipgloss.Style
	skip   lipgloss.Style
	detail lipgloss.Style
	title  lipgloss.Style
}

// newStyles returns colored styles when color is wanted and w is a terminal,
// and unstyled ones otherwise.
func newStyles(w io.Writer, color bool) styles {
	if f, ok := w.(*os.File); !color || !ok || !term.IsTerminal(int(f.Fd())) {
		plain := lipgloss.NewStyle()
		return styles{pass: plain, fail: plain, skip: plain, detail: plain, title: plain}
	}
	return styles{
		pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")),
		fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		skip:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		title:  titleStyle,
	}
}

func (s styles) status(r verify.Result) string {
	switch {
	case r.Skipped:
		return s.skip.Render("SKIP")
	case r.Failed():
		return s.fail.Render("FAIL")
	}
	return s.pass.Render("ok  ")
}

func printReport(w io.Writer, rep verify.Report, s styles) {
	for _, r := range rep.Results {
		fmt.Fprintf(w, "%s %s\n", s.status(r), r.Case)
		for _, line := range resultLines(r) {
			fmt.Fprintf(w, "     %s\n", s.detail.Render(line))
		}
	}
	passed, failed, skipped := rep.Counts()
	fmt.Fprintf(w, "\n%s %d passed, %d failed, %d skipped\n", s.title.Render("abicheck"), passed, failed, skipped)
}

// resultLines explains a result that did not pass.
func resultLines(r verify.Result) []string {
	switch {
	case r.Skipped:
		return []string{r.SkipReason}
	case r.Err != nil:
		return []string{r.Err.Error()}
	}
	var lines []string
	for _, c := range r.Failures() {
		lines = append(lines, c.Failure().Error())
	}
	return lines
}
