// Package report renders scenario results as plain text, JSON or YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/patterns/demo"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("report: unknown format")

// UnknownFormatError names the rejected format; it matches ErrUnknownFormat.
type UnknownFormatError struct{ Format string }

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return "report: unknown format " + strconv.Quote(e.Format)
}

func (e UnknownFormatError) Is(target error) bool { return target == ErrUnknownFormat }

// ParseFormat accepts "text", "json" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", UnknownFormatError{Format: s}
}

// Run is the serialised shape of one demo.Result.
type Run struct {
	RunID      string       `json:"run_id" yaml:"run_id"`
	Scenario   string       `json:"scenario" yaml:"scenario"`
	Category   string       `json:"category,omitempty" yaml:"category,omitempty"`
	DurationMS float64      `json:"duration_ms" yaml:"duration_ms"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty"`
	Events     []demo.Event `json:"events" yaml:"events"`
}

// Document is the top-level JSON and YAML payload.
type Document struct {
	Runs []Run `json:"runs" yaml:"runs"`
}

// NewDocument converts results into their serialised shape.
func NewDocument(results []demo.Result) Document {
	doc := Document{Runs: make([]Run, 0, len(results))}
	for _, r := range results {
		run := Run{
			RunID:      r.RunID,
			Scenario:   r.Scenario,
			Category:   string(r.Category),
			DurationMS: float64(r.Duration) / float64(time.Millisecond),
			Events:     r.Events,
		}
		if run.Events == nil {
			run.Events = []demo.Event{}
		}
		if r.Err != nil {
			run.Error = r.Err.Error()
		}
		doc.Runs = append(doc.Runs, run)
	}
	return doc
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []demo.Result) error {
	switch format {
	case Text:
		return writeText(w, results)
	case JSON:
		data, err := jsoniter.ConfigFastest.MarshalIndent(NewDocument(results), "", "  ")
		if err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(results)); err != nil {
			_ = enc.Close()
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	}
	return UnknownFormatError{Format: string(format)}
}

// writeText prints a header per run followed by its lines verbatim.
func writeText(w io.Writer, results []demo.Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s (%s)\n", r.Scenario, r.Category); err != nil {
			return err
		}
		for _, e := range r.Events {
			if _, err := fmt.Fprintln(w, e.Text); err != nil {
				return err
			}
		}
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "error: %v\n", r.Err); err != nil {
				return err
			}
		}
	}
	return nil
}
