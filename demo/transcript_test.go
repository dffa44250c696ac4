package demo_test

import (
	"fmt"
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Transcript
// -----------------------------------------------------------------------------

// TestTranscript_SplitsLinesInOrder verifies writes are split into one event per line, across write boundaries.
func TestTranscript_SplitsLinesInOrder(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("run-1", "x")
	_, err := fmt.Fprintln(tr, "first")
	require.NoError(t, err)
	_, _ = fmt.Fprint(tr, "sec")
	_, _ = fmt.Fprint(tr, "ond\nthird\n\n")

	events := tr.Events()
	require.Len(t, events, 4)
	assert.Equal(t, []string{"first", "second", "third", ""}, demo.Lines(events))
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, "run-1", tr.RunID())
	assert.Equal(t, "x", tr.Scenario())
}

// TestTranscript_FlushEmitsPartialLine verifies a trailing line without newline appears only after Flush.
func TestTranscript_FlushEmitsPartialLine(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", "x")
	_, _ = fmt.Fprint(tr, "no newline")
	assert.Empty(t, tr.Events())

	tr.Flush()
	assert.Equal(t, []string{"no newline"}, tr.Lines())

	// second flush is a no-op
	tr.Flush()
	assert.Len(t, tr.Events(), 1)
}

// TestTranscript_EventsIsACopy verifies callers cannot mutate recorded events.
func TestTranscript_EventsIsACopy(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", "x")
	_, _ = fmt.Fprintln(tr, "a")

	events := tr.Events()
	events[0].Text = "mutated"
	assert.Equal(t, []string{"a"}, tr.Lines())
}

// TestTranscript_StripsCarriageReturn verifies CRLF line endings produce clean event text.
func TestTranscript_StripsCarriageReturn(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", "x")
	_, _ = tr.Write([]byte("dos line\r\n"))
	assert.Equal(t, []string{"dos line"}, tr.Lines())
}
