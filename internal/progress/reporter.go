// Package progress reports a mining run's progress: a level and time slot,
// and how many candidates and MDCOPs go with them. It mirrors internal/runner's
// interactive/plain dual-prompter split (bubbletea_prompter.go falling back
// to terminal_prompter.go) — here for a live view instead of a wizard
// prompt.
package progress

import (
	"fmt"
	"io"
)

// Event is one progress update emitted by the Miner's caller. internal/cli
// sends one Event per pattern size of the result after mining.Mine has
// returned; it does not report individual levels or time slots while
// mining is still running.
type Event struct {
	Level      int
	SlotIndex  int
	SlotCount  int
	Candidates int
	MDCOPs     int
	Phase      string
}

// Reporter receives progress Events during a mining run and is Closed once
// mining finishes (successfully or not).
type Reporter interface {
	Update(Event)
	Close()
}

// New returns a live bubbletea Reporter when out is an interactive
// terminal and enabled is true, otherwise a plain line-oriented Reporter
// (or a no-op one when progress reporting is turned off entirely).
func New(out io.Writer, enabled bool) Reporter {
	if !enabled {
		return noopReporter{}
	}
	if r := newTUIReporter(out); r != nil {
		return r
	}
	return &plainReporter{out: out}
}

type noopReporter struct{}

func (noopReporter) Update(Event) {}
func (noopReporter) Close()       {}

// plainReporter prints one line per Event, the fallback used whenever
// stdout isn't a terminal or the bubbletea program fails to start — the
// same fallback shape as bubbleTeaPrompter.fallback.
type plainReporter struct {
	out io.Writer
}

func (p *plainReporter) Update(ev Event) {
	fmt.Fprintf(p.out, "level=%d slot=%d/%d candidates=%d mdcops=%d phase=%s\n",
		ev.Level, ev.SlotIndex+1, ev.SlotCount, ev.Candidates, ev.MDCOPs, ev.Phase)
}

func (p *plainReporter) Close() {}
