package demo

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sghaida/patterns/internal/logfields"
	"github.com/sghaida/patterns/internal/metrics"
)

// Result describes one scenario run.
type Result struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Scenario string        `json:"scenario" yaml:"scenario"`
	Category Category      `json:"category,omitempty" yaml:"category,omitempty"`
	Events   []Event       `json:"events" yaml:"events"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Err      error         `json:"-" yaml:"-"`
}

// Runner executes scenarios from a Registry, one synchronous call at a time.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
	recorder metrics.Recorder
	now      func() time.Time
	newID    func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for run lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner returns a Runner over reg.
func NewRunner(reg *Registry, opts ...Option) *Runner {
	if reg == nil {
		reg = NewRegistry()
	}
	r := &Runner{
		registry: reg,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the runner resolves names against.
func (r *Runner) Registry() *Registry { return r.registry }

// Run executes the named scenario and returns its events in emission order.
// It fails with UnknownScenarioError when name is not registered.
func (r *Runner) Run(name string) ([]Event, error) {
	res, err := r.Execute(name)
	return res.Events, err
}

// Execute runs the named scenario and returns the full Result. Events
// emitted before a failure are kept in the Result.
func (r *Runner) Execute(name string) (Result, error) {
	res := Result{RunID: r.newID(), Scenario: name}

	s, err := r.registry.Resolve(name)
	if err != nil {
		r.recorder.IncRunResult(name, metrics.ResultUnknown)
		r.logger.Warn("Scenario not registered", logfields.Scenario(name), logfields.Error(err))
		res.Err = err
		return res, err
	}
	res.Category = s.Category()

	r.logger.Debug("Running scenario",
		logfields.Scenario(name),
		logfields.Category(string(res.Category)),
		logfields.RunID(res.RunID))

	t := NewTranscript(res.RunID, name)
	start := r.now()
	err = runGuarded(s, t)
	t.Flush()
	res.Duration = r.now().Sub(start)
	res.Events = t.Events()
	res.Err = err

	r.recorder.ObserveRunDuration(name, res.Duration)
	r.recorder.AddEvents(name, len(res.Events))

	if err != nil {
		r.recorder.IncRunResult(name, metrics.ResultFailed)
		r.logger.Error("Scenario failed",
			logfields.Scenario(name),
			logfields.RunID(res.RunID),
			logfields.Events(len(res.Events)),
			logfields.Error(err))
		return res, err
	}

	r.recorder.IncRunResult(name, metrics.ResultSuccess)
	r.logger.Info("Scenario completed",
		logfields.Scenario(name),
		logfields.RunID(res.RunID),
		logfields.Events(len(res.Events)),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

// RunAll executes every registered scenario in name order. A failing
// scenario does not stop the remaining ones; its error is in its Result.
func (r *Runner) RunAll() []Result {
	names := r.registry.Names()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		res, _ := r.Execute(name)
		results = append(results, res)
	}
	return results
}

// runGuarded converts a panic inside the scenario into a ScenarioPanicError.
func runGuarded(s Scenario, t *Transcript) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = ScenarioPanicError{Name: s.Name(), Value: rec}
		}
	}()
	return s.Run(t)
}
