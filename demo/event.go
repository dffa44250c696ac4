package demo

import (
	"bytes"
	"strings"
	"sync"
)

// Event is one line a scenario printed, in emission order.
type Event struct {
	Seq  int    `json:"seq" yaml:"seq"`
	Text string `json:"text" yaml:"text"`
}

// Transcript is an append-only io.Writer that turns written bytes into
// Events, one per line. A trailing line without a newline is held back
// until Flush.
type Transcript struct {
	mu       sync.Mutex
	runID    string
	scenario string
	events   []Event
	partial  bytes.Buffer
}

// NewTranscript returns an empty transcript for one run of scenario.
func NewTranscript(runID, scenario string) *Transcript {
	return &Transcript{runID: runID, scenario: scenario}
}

// RunID identifies the run the transcript belongs to.
func (t *Transcript) RunID() string { return t.runID }

// Scenario is the name of the scenario being recorded.
func (t *Transcript) Scenario() string { return t.scenario }

// Write implements io.Writer. It never fails.
func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rest := p
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			t.partial.Write(rest)
			break
		}
		t.partial.Write(rest[:i])
		t.appendLocked(t.partial.String())
		t.partial.Reset()
		rest = rest[i+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line as a final event.
func (t *Transcript) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.partial.Len() == 0 {
		return
	}
	t.appendLocked(t.partial.String())
	t.partial.Reset()
}

// Events returns a copy of the events recorded so far.
func (t *Transcript) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Lines returns the text of every recorded event.
func (t *Transcript) Lines() []string {
	return Lines(t.Events())
}

func (t *Transcript) appendLocked(line string) {
	t.events = append(t.events, Event{
		Seq:  len(t.events) + 1,
		Text: strings.TrimSuffix(line, "\r"),
	})
}

// Lines extracts the text of each event, preserving order.
func Lines(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Text
	}
	return out
}
