package board

import "log/slog"

// Op identifies which accessor produced an event.
type Op string

const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// Kind classifies the outcome of an access.
type Kind string

const (
	// KindApplied reports a successful write.
	KindApplied Kind = "applied"

	// KindBadPosition reports an access outside the grid.
	KindBadPosition Kind = "bad_position"

	// KindBadValue reports a write with a value outside [MinValue, MaxValue].
	KindBadValue Kind = "bad_value"
)

// Event describes a single observed access. Value is meaningful for set
// events only; Detail carries the human-readable reason for rejections.
type Event struct {
	Op     Op
	Kind   Kind
	Row    int
	Col    int
	Value  int
	Detail string
}

// Level maps the event to a log level: applied writes are informational,
// everything else is a warning.
func (e Event) Level() slog.Level {
	if e.Kind == KindApplied {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// Observer receives board access events. Implementations must be cheap;
// they run synchronously inside the accessors.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// NewLogObserver returns an Observer that emits every event as a
// structured log record on logger.
func NewLogObserver(logger *slog.Logger) Observer {
	return ObserverFunc(func(e Event) {
		args := []any{"op", string(e.Op), "kind", string(e.Kind), "row", e.Row, "col", e.Col}
		if e.Op == OpSet {
			args = append(args, "value", e.Value)
		}

		switch e.Kind {
		case KindApplied:
			logger.Info("board write applied", args...)
		default:
			logger.Warn("board access rejected", append(args, "detail", e.Detail)...)
		}
	})
}

// Recorder is an Observer that keeps every event it sees, in order.
type Recorder struct {
	Events []Event
}

// Observe appends e to Events.
func (r *Recorder) Observe(e Event) {
	r.Events = append(r.Events, e)
}
