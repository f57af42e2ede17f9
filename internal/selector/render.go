package selector

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

const (
	rule        = 50
	suggestions = 3
)

type palette struct {
	title   func(a ...interface{}) string
	divider func(a ...interface{}) string
	label   func(a ...interface{}) string
	index   func(a ...interface{}) string
	good    func(a ...interface{}) string
	warn    func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
		return palette{plain, plain, plain, plain, plain, plain}
	}
	// Styling is forced on: Out is usually stderr while stdout is captured
	// by the shell, so color's own stdout detection would disable it.
	style := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		title:   style(color.FgBlue, color.Bold),
		divider: style(color.FgHiBlack),
		label:   style(color.Bold),
		index:   style(color.FgHiBlue),
		good:    style(color.FgGreen, color.Bold),
		warn:    style(color.FgHiRed),
	}
}

func (s *Selector) renderList(candidates []string) {
	out := s.opts.Out
	p := s.palette
	banner := strings.Repeat("=", rule)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", p.divider(banner), p.title(centered(s.opts.Title, rule)), p.divider(banner))
	fmt.Fprintf(out, "Available %s:\n", s.opts.Noun)
	fmt.Fprintln(out, p.divider(strings.Repeat("-", rule)))
	s.renderNumbered(candidates)
	fmt.Fprintln(out, p.divider(strings.Repeat("-", rule)))
	fmt.Fprintf(out, "Total %s: %d\n", s.opts.Noun, len(candidates))
}

func (s *Selector) renderMatches(matches []string, text string) {
	fmt.Fprintf(s.opts.Out, "\n%s\n", s.palette.good(fmt.Sprintf("Found %d matches for '%s':", len(matches), text)))
	s.renderNumbered(matches)
}

func (s *Selector) renderNumbered(names []string) {
	for i, name := range names {
		fmt.Fprintf(s.opts.Out, "%s %s\n", s.palette.index(fmt.Sprintf("%2d.", i+1)), s.fit(name, i+1))
	}
}

func (s *Selector) renderOptions(n int) {
	out := s.opts.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.palette.label("Options:"))
	fmt.Fprintf(out, " • Enter a number (1-%d) to select\n", n)
	fmt.Fprintln(out, " • Type a partial name to filter results")
	fmt.Fprintln(out, " • Type 'q' or 'quit' to exit")
}

// fit truncates name so that an indexed row stays within Width columns.
func (s *Selector) fit(name string, index int) string {
	if s.opts.Width <= 0 {
		return name
	}
	prefix := len(fmt.Sprintf("%2d. ", index))
	avail := s.opts.Width - prefix
	if avail < 4 {
		return name
	}
	return runewidth.Truncate(name, avail, "…")
}

func (s *Selector) noMatchMessage(candidates []string, text string) string {
	msg := fmt.Sprintf("No %s found matching '%s'.", s.opts.Noun, text)
	if near := Suggest(candidates, text, suggestions); len(near) > 0 {
		msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(near, ", "))
	}
	return msg + " Please try again."
}

// Suggest ranks candidates that contain the letters of text in order,
// best first, returning at most limit names.
func Suggest(candidates []string, text string, limit int) []string {
	matches := fuzzy.Find(text, candidates)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Str)
	}
	return names
}

func centered(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
