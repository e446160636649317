// Package provenance captures session-scoped traces of operation
// invocations. The store is independent of the registry that describes
// the operations: it records what was called, with which arguments, and
// what came back, without ever invoking anything itself.
package provenance

import "time"

// TraceEntry records one invocation of a traced operation.
type TraceEntry struct {
	ID            string         `json:"id"`
	OpID          string         `json:"opId"`
	StartedAt     time.Time      `json:"startedAt"`
	Duration      time.Duration  `json:"duration"`
	Inputs        map[string]any `json:"inputs,omitempty"`
	Outputs       map[string]any `json:"outputs,omitempty"`
	Error         string         `json:"error,omitempty"`
	Seed          *int64         `json:"seed,omitempty"`
	Deterministic bool           `json:"deterministic"`
	Parents       []string       `json:"parents,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Failed reports whether the traced invocation ended in an error.
func (e TraceEntry) Failed() bool {
	return e.Error != ""
}

// SessionTrace is a bounded, ordered collection of trace entries between
// an explicit start and end. EndedAt is nil while the session is active.
type SessionTrace struct {
	ID        string         `json:"id"`
	StartedAt time.Time      `json:"startedAt"`
	EndedAt   *time.Time     `json:"endedAt,omitempty"`
	Entries   []TraceEntry   `json:"entries"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Ended reports whether the session has been closed.
func (t SessionTrace) Ended() bool {
	return t.EndedAt != nil
}

// snapshot returns a copy whose entry slice is detached from the store,
// so callers can hold it across later mutations.
func (t *SessionTrace) snapshot() SessionTrace {
	out := *t
	out.Entries = append([]TraceEntry(nil), t.Entries...)
	if t.EndedAt != nil {
		ended := *t.EndedAt
		out.EndedAt = &ended
	}
	return out
}

// TraceOption customizes a trace entry at record time.
type TraceOption func(*TraceEntry)

// WithSeed records the random seed an operation ran with, for replay.
func WithSeed(seed int64) TraceOption {
	return func(e *TraceEntry) {
		s := seed
		e.Seed = &s
	}
}

// WithParents links the entry to the trace ids it derives from.
func WithParents(ids ...string) TraceOption {
	return func(e *TraceEntry) {
		e.Parents = append(e.Parents, ids...)
	}
}

// WithTraceError marks the entry as failed. A nil error leaves it untouched.
func WithTraceError(err error) TraceOption {
	return func(e *TraceEntry) {
		if err != nil {
			e.Error = err.Error()
		}
	}
}

// WithEntryMetadata attaches free-form metadata to the entry.
func WithEntryMetadata(md map[string]any) TraceOption {
	return func(e *TraceEntry) {
		e.Metadata = md
	}
}

// WithNonDeterministic flags the entry as non-repeatable even given
// identical inputs.
func WithNonDeterministic() TraceOption {
	return func(e *TraceEntry) {
		e.Deterministic = false
	}
}
