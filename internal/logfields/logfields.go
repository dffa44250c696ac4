package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyScenario   = "scenario"
	KeyCategory   = "category"
	KeyRunID      = "run_id"
	KeyEvents     = "events"
	KeyDurationMS = "duration_ms"
	KeyFormat     = "format"
	KeyError      = "error"
)

func Scenario(name string) slog.Attr  { return slog.String(KeyScenario, name) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Events(n int) slog.Attr          { return slog.Int(KeyEvents, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
