// Package selector implements the interactive pick loop: a small state
// machine that resolves lines of user input against an ordered candidate
// list by index, case-insensitive substring filter, or confirmation.
package selector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaxReadFaults is the number of consecutive read failures tolerated
// before the loop gives up and cancels.
const DefaultMaxReadFaults = 2

// State names one step of the selection loop.
type State int

const (
	StateAwaitInput State = iota
	StateNumericSelect
	StateFilterSelect
	StateConfirmSingle
	StateSubSelect
	StateChosen
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateAwaitInput:
		return "await input"
	case StateNumericSelect:
		return "numeric select"
	case StateFilterSelect:
		return "filter select"
	case StateConfirmSingle:
		return "confirm single"
	case StateSubSelect:
		return "sub select"
	case StateChosen:
		return "chosen"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the loop stops in this state.
func (s State) Terminal() bool {
	return s == StateChosen || s == StateCancelled
}

// Outcome is the result of one Select call.
type Outcome struct {
	Name   string
	Chosen bool
}

// Cancelled is the outcome when the user quits or input runs out.
var Cancelled = Outcome{}

// Chosen returns the outcome for a selected name.
func Chosen(name string) Outcome {
	return Outcome{Name: name, Chosen: true}
}

func (o Outcome) String() string {
	if !o.Chosen {
		return "cancelled"
	}
	return fmt.Sprintf("chosen(%s)", o.Name)
}

// Options configures a Selector. The zero value writes to io.Discard.
type Options struct {
	// Out receives the list, prompts and diagnostics.
	Out io.Writer
	// Color enables ANSI styling regardless of what Out is attached to.
	Color bool
	// Width truncates displayed names to fit; zero disables truncation.
	Width int
	// Title is shown in the banner above the full list.
	Title string
	// Noun names the candidates in messages, e.g. "repositories".
	Noun string
	// MaxReadFaults bounds consecutive read failures; zero means
	// DefaultMaxReadFaults.
	MaxReadFaults int
	// Report, when set, observes every diagnostic as it is printed.
	Report func(Diagnostic)
}

// Selector runs the interactive selection loop.
type Selector struct {
	opts    Options
	palette palette
}

// New constructs a Selector, filling in defaults for unset options.
func New(opts Options) *Selector {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Noun == "" {
		opts.Noun = "candidates"
	}
	if opts.Title == "" {
		opts.Title = "SELECT"
	}
	if opts.MaxReadFaults <= 0 {
		opts.MaxReadFaults = DefaultMaxReadFaults
	}
	return &Selector{opts: opts, palette: newPalette(opts.Color)}
}

// Select shows candidates and reads lines from in until the user picks one,
// quits, or input is exhausted. Cancelling ctx is treated like an interrupt;
// callers that need a blocked read to return must also unblock in.
func (s *Selector) Select(ctx context.Context, candidates []string, in io.Reader) Outcome {
	if len(candidates) == 0 {
		s.report(ErrNoCandidates, fmt.Sprintf("No %s found.", s.opts.Noun))
		return Cancelled
	}
	s.renderList(candidates)
	r := s.newRun(ctx, candidates, in)
	return r.loop()
}

func (s *Selector) newRun(ctx context.Context, candidates []string, in io.Reader) *run {
	return &run{
		sel:        s,
		ctx:        ctx,
		reader:     bufio.NewReader(in),
		candidates: candidates,
		state:      StateAwaitInput,
	}
}

func (s *Selector) report(err error, message string) {
	d := Diagnostic{Err: err, Message: message}
	fmt.Fprintln(s.opts.Out, s.palette.warn("✗ "+message))
	if s.opts.Report != nil {
		s.opts.Report(d)
	}
}

// run holds the state of one Select invocation.
type run struct {
	sel        *Selector
	ctx        context.Context
	reader     *bufio.Reader
	candidates []string

	state   State
	input   string   // text being resolved by NumericSelect or FilterSelect
	matches []string // Filter Result for ConfirmSingle and SubSelect
	chosen  string
	faults  int

	// skipTail is set when a read fault cut a line short; the rest of that
	// line is discarded rather than answered.
	skipTail bool
}

func (r *run) loop() Outcome {
	for !r.state.Terminal() {
		r.state = r.step()
	}
	if r.state == StateChosen {
		return Chosen(r.chosen)
	}
	return Cancelled
}

func (r *run) step() State {
	switch r.state {
	case StateAwaitInput:
		return r.awaitInput()
	case StateNumericSelect:
		return r.numericSelect()
	case StateFilterSelect:
		return r.filterSelect()
	case StateConfirmSingle:
		return r.confirmSingle()
	case StateSubSelect:
		return r.subSelect()
	default:
		panic(fmt.Sprintf("selector: no transition from %v", r.state))
	}
}

func (r *run) awaitInput() State {
	r.sel.renderOptions(len(r.candidates))
	line, next, ok := r.readLine("\n" + r.sel.palette.label("Your choice: "))
	if !ok {
		return next
	}
	switch {
	case isQuit(line):
		return StateCancelled
	case line == "":
		r.sel.report(ErrInvalidToken, "Please enter a number, a partial name, or 'q' to quit.")
		return StateAwaitInput
	case isDigits(line):
		r.input = line
		return StateNumericSelect
	default:
		r.input = line
		return StateFilterSelect
	}
}

func (r *run) numericSelect() State {
	i, ok := parseIndex(r.input, len(r.candidates))
	if !ok {
		r.sel.report(ErrOutOfRange, fmt.Sprintf("Invalid selection. Please enter a number between 1 and %d.", len(r.candidates)))
		return StateAwaitInput
	}
	r.chosen = r.candidates[i]
	return StateChosen
}

func (r *run) filterSelect() State {
	r.matches = Filter(r.candidates, r.input)
	switch len(r.matches) {
	case 0:
		r.sel.report(ErrNoMatch, r.sel.noMatchMessage(r.candidates, r.input))
		return StateAwaitInput
	case 1:
		fmt.Fprintf(r.sel.opts.Out, "%s %s\n", r.sel.palette.good("✓ Found one match:"), r.matches[0])
		return StateConfirmSingle
	default:
		r.sel.renderMatches(r.matches, r.input)
		return StateSubSelect
	}
}

func (r *run) confirmSingle() State {
	name := r.matches[0]
	line, next, ok := r.readLine(r.sel.palette.label(fmt.Sprintf("Do you want to select '%s'? (Y/n): ", name)))
	if !ok {
		return next
	}
	if isQuit(line) {
		return StateCancelled
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		r.chosen = name
		return StateChosen
	default:
		return StateAwaitInput
	}
}

func (r *run) subSelect() State {
	prompt := fmt.Sprintf("\nSelect from filtered results (1-%d) or press Enter to see all: ", len(r.matches))
	line, next, ok := r.readLine(r.sel.palette.label(prompt))
	if !ok {
		return next
	}
	switch {
	case line == "":
		r.sel.renderList(r.candidates)
		return StateAwaitInput
	case isQuit(line):
		return StateCancelled
	case isDigits(line):
		i, ok := parseIndex(line, len(r.matches))
		if !ok {
			// Falls back to the full list rather than re-prompting within
			// the filtered one.
			r.sel.report(ErrOutOfRange, fmt.Sprintf("Invalid selection. Please enter a number between 1 and %d.", len(r.matches)))
			return StateAwaitInput
		}
		r.chosen = r.matches[i]
		return StateChosen
	default:
		r.sel.report(ErrInvalidToken, fmt.Sprintf("Invalid input. Please enter a number or press Enter to see all %s.", r.sel.opts.Noun))
		return StateAwaitInput
	}
}

// readLine writes prompt and reads one trimmed line. When ok is false the
// line could not be read and the loop should move to next.
func (r *run) readLine(prompt string) (line string, next State, ok bool) {
	out := r.sel.opts.Out
	fmt.Fprint(out, prompt)
	raw, err := r.reader.ReadString('\n')
	if r.skipTail {
		r.skipTail = false
		switch {
		case err == nil:
			raw, err = r.reader.ReadString('\n')
		case errors.Is(err, io.EOF):
			raw = ""
		}
	}
	if err != nil {
		if r.ctx.Err() != nil {
			fmt.Fprintln(out)
			r.sel.report(fmt.Errorf("%w: %w", ErrInputExhausted, r.ctx.Err()), "Exiting...")
			return "", StateCancelled, false
		}
		if !errors.Is(err, io.EOF) {
			r.faults++
			r.skipTail = raw != ""
			r.sel.report(fmt.Errorf("%w: %w", ErrReadFault, err), fmt.Sprintf("An error occurred: %v", err))
			if r.faults >= r.sel.opts.MaxReadFaults {
				return "", StateCancelled, false
			}
			return "", StateAwaitInput, false
		}
		if raw == "" {
			fmt.Fprintln(out)
			r.sel.report(ErrInputExhausted, "Exiting...")
			return "", StateCancelled, false
		}
		// An unterminated final line is still answered; EOF is seen on the
		// next read.
	}
	r.faults = 0
	return strings.TrimSpace(raw), r.state, true
}

// Filter returns the candidates containing text, ignoring case, in their
// original order.
func Filter(candidates []string, text string) []string {
	needle := strings.ToLower(text)
	var matches []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

func isQuit(line string) bool {
	return strings.EqualFold(line, "q") || strings.EqualFold(line, "quit")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseIndex converts a 1-based choice into a 0-based index below n.
func parseIndex(s string, n int) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
