package demo_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRecorder is a metrics.Recorder spy.
type countingRecorder struct {
	results map[string]metrics.ResultLabel
	events  map[string]int
	runs    int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{results: map[string]metrics.ResultLabel{}, events: map[string]int{}}
}

func (c *countingRecorder) ObserveRunDuration(string, time.Duration)     { c.runs++ }
func (c *countingRecorder) IncRunResult(s string, r metrics.ResultLabel) { c.results[s] = r }
func (c *countingRecorder) AddEvents(s string, n int)                    { c.events[s] += n }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry() *demo.Registry {
	return demo.NewRegistry().
		Provide(demo.Define("hello", demo.Behavioral, "", func(w io.Writer) error {
			fmt.Fprintln(w, "hello")
			fmt.Fprint(w, "world")
			return nil
		})).
		Provide(demo.Define("fails", demo.Creational, "", func(w io.Writer) error {
			fmt.Fprintln(w, "before failure")
			return errors.New("boom")
		})).
		Provide(demo.Define("panics", demo.Structural, "", func(w io.Writer) error {
			fmt.Fprintln(w, "before panic")
			panic("kaboom")
		}))
}

//
// -----------------------------------------------------------------------------
// Run
// -----------------------------------------------------------------------------

// TestRun_ReturnsOrderedEvents verifies Run returns the scenario's lines as numbered events in order.
func TestRun_ReturnsOrderedEvents(t *testing.T) {
	t.Parallel()

	rec := newCountingRecorder()
	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()), demo.WithRecorder(rec))

	events, err := r.Run("hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, demo.Lines(events))
	assert.Equal(t, metrics.ResultSuccess, rec.results["hello"])
	assert.Equal(t, 2, rec.events["hello"])
}

// TestRun_UnknownScenario verifies Run fails with UnknownScenarioError and records the unknown result.
func TestRun_UnknownScenario(t *testing.T) {
	t.Parallel()

	rec := newCountingRecorder()
	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()), demo.WithRecorder(rec))

	events, err := r.Run("nope")
	assert.Nil(t, events)
	assert.ErrorIs(t, err, demo.ErrUnknownScenario)
	assert.Equal(t, metrics.ResultUnknown, rec.results["nope"])
}

// TestRun_FreshRunIDs verifies every run gets a new run ID.
func TestRun_FreshRunIDs(t *testing.T) {
	t.Parallel()

	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()))
	a, _ := r.Execute("hello")
	b, _ := r.Execute("hello")
	assert.NotEqual(t, a.RunID, b.RunID)
}

//
// -----------------------------------------------------------------------------
// Execute
// -----------------------------------------------------------------------------

// TestExecute_KeepsEventsOnError verifies events printed before a scenario error are kept.
func TestExecute_KeepsEventsOnError(t *testing.T) {
	t.Parallel()

	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()))

	res, err := r.Execute("fails")
	require.EqualError(t, err, "boom")
	assert.Equal(t, []string{"before failure"}, demo.Lines(res.Events))
	assert.Equal(t, demo.Creational, res.Category)
	assert.NotEmpty(t, res.RunID)
}

// TestExecute_RecoversPanics verifies a panicking scenario surfaces as ScenarioPanicError.
func TestExecute_RecoversPanics(t *testing.T) {
	t.Parallel()

	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()))

	res, err := r.Execute("panics")
	require.ErrorIs(t, err, demo.ErrScenarioPanic)

	var pe demo.ScenarioPanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "panics", pe.Name)
	assert.Equal(t, "kaboom", pe.Value)
	assert.Equal(t, []string{"before panic"}, demo.Lines(res.Events))
}

// TestExecute_UsesClock verifies the duration is measured with the injected clock.
func TestExecute_UsesClock(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()), demo.WithClock(clock))

	res, err := r.Execute("hello")
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, res.Duration)
}

//
// -----------------------------------------------------------------------------
// RunAll
// -----------------------------------------------------------------------------

// TestRunAll_ContinuesPastFailures verifies RunAll runs every scenario in name order even when one fails.
func TestRunAll_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	rec := newCountingRecorder()
	r := demo.NewRunner(testRegistry(), demo.WithLogger(quietLogger()), demo.WithRecorder(rec))

	results := r.RunAll()
	require.Len(t, results, 3)
	assert.Equal(t, "fails", results[0].Scenario)
	assert.Error(t, results[0].Err)
	assert.Equal(t, "hello", results[1].Scenario)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, "panics", results[2].Scenario)
	assert.Error(t, results[2].Err)
	assert.Equal(t, 3, rec.runs)
}

//
// -----------------------------------------------------------------------------
// NewRunner
// -----------------------------------------------------------------------------

// TestNewRunner_NilRegistry verifies a nil registry is replaced by an empty one.
func TestNewRunner_NilRegistry(t *testing.T) {
	t.Parallel()

	r := demo.NewRunner(nil)
	require.NotNil(t, r.Registry())
	_, err := r.Run("anything")
	assert.ErrorIs(t, err, demo.ErrUnknownScenario)
}
