package provenance

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/petersancho/semreg/internal/pubsub"
	"github.com/petersancho/semreg/internal/tracing"
)

// DefaultMaxEntries caps how many entries one session retains before the
// oldest is evicted.
const DefaultMaxEntries = 1000

// Event types published to an attached broker.
const (
	SessionStartedEvent pubsub.EventType = "session.started"
	SessionEndedEvent   pubsub.EventType = "session.ended"
	EntryRecordedEvent  pubsub.EventType = "entry.recorded"
)

// TraceEvent is the payload delivered to broker subscribers.
type TraceEvent struct {
	SessionID string
	Entry     TraceEntry
}

// Store captures trace entries into a single active session plus an
// archive of ended ones. The active session is one mutable slot, not a
// stack: starting a new session while one is active archives the
// unfinished one rather than dropping its entries.
type Store struct {
	mu         sync.Mutex
	maxEntries int
	clock      func() time.Time
	entropy    *rand.Rand

	current *SessionTrace
	archive map[string]*SessionTrace
	order   []string

	tracer trace.Tracer
	broker *pubsub.Broker[TraceEvent]
}

// Option configures a Store.
type Option func(*Store)

// WithMaxEntries overrides the per-session entry cap. Values below one
// are ignored.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithClock substitutes the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithTracer mirrors every recorded entry as an OpenTelemetry span.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Store) {
		s.tracer = tracer
	}
}

// WithBroker publishes session and entry events to the given broker.
func WithBroker(broker *pubsub.Broker[TraceEvent]) Option {
	return func(s *Store) {
		s.broker = broker
	}
}

// NewStore creates an empty store with no active session.
func NewStore(opts ...Option) *Store {
	s := &Store{
		maxEntries: DefaultMaxEntries,
		clock:      time.Now,
		entropy:    rand.New(rand.NewSource(time.Now().UnixNano())),
		archive:    make(map[string]*SessionTrace),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession opens a new active session and returns its id. An
// unfinished previous session is archived first, never discarded.
func (s *Store) StartSession(metadata map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.startSessionLocked(metadata)
}

func (s *Store) startSessionLocked(metadata map[string]any) string {
	if s.current != nil {
		s.archiveLocked()
	}

	session := &SessionTrace{
		ID:        uuid.New().String(),
		StartedAt: s.clock(),
		Metadata:  metadata,
	}
	s.current = session
	s.publish(SessionStartedEvent, TraceEvent{SessionID: session.ID})
	return session.ID
}

// archiveLocked stamps the active session with an end time and moves it
// into the archive, preserving insertion order.
func (s *Store) archiveLocked() *SessionTrace {
	session := s.current
	ended := s.clock()
	session.EndedAt = &ended
	s.archive[session.ID] = session
	s.order = append(s.order, session.ID)
	s.current = nil
	s.publish(SessionEndedEvent, TraceEvent{SessionID: session.ID})
	return session
}

// AddEntry appends an entry to the active session, lazily starting one
// when none is active, and returns the assigned trace id. When the
// session is at capacity the oldest entry is evicted first.
func (s *Store) AddEntry(entry TraceEntry) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.startSessionLocked(nil)
	}

	now := s.clock()
	entry.ID = ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
	if entry.StartedAt.IsZero() {
		entry.StartedAt = now
	}

	s.current.Entries = append(s.current.Entries, entry)
	if len(s.current.Entries) > s.maxEntries {
		s.current.Entries = s.current.Entries[1:]
	}

	s.mirror(entry, s.current.ID)
	s.publish(EntryRecordedEvent, TraceEvent{SessionID: s.current.ID, Entry: entry})
	return entry.ID
}

// RecordTrace appends an instant entry for call sites that cannot wrap a
// single function. Duration is always zero since there is no bracketed
// start and end.
func (s *Store) RecordTrace(opID string, inputs, outputs map[string]any, opts ...TraceOption) string {
	entry := TraceEntry{
		OpID:          opID,
		Inputs:        inputs,
		Outputs:       outputs,
		Deterministic: true,
	}
	for _, opt := range opts {
		opt(&entry)
	}
	return s.AddEntry(entry)
}

// EndSession stamps an end time on the active session, archives it, and
// returns it. The second return is false when no session was active.
func (s *Store) EndSession() (SessionTrace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return SessionTrace{}, false
	}
	return s.archiveLocked().snapshot(), true
}

// Current returns a snapshot of the active session, if any.
func (s *Store) Current() (SessionTrace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return SessionTrace{}, false
	}
	return s.current.snapshot(), true
}

// Session returns an archived session by id.
func (s *Store) Session(id string) (SessionTrace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.archive[id]
	if !ok {
		return SessionTrace{}, false
	}
	return session.snapshot(), true
}

// Sessions returns every archived session in the order they ended.
func (s *Store) Sessions() []SessionTrace {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SessionTrace, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.archive[id].snapshot())
	}
	return out
}

// ExportAll returns the full archive keyed by session id.
func (s *Store) ExportAll() map[string]SessionTrace {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]SessionTrace, len(s.archive))
	for id, session := range s.archive {
		out[id] = session.snapshot()
	}
	return out
}

// Clear drops the archive and any active session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.archive = make(map[string]*SessionTrace)
	s.order = nil
}

// mirror re-emits an entry as an OpenTelemetry span when a tracer is
// attached. Span timestamps reproduce the recorded interval.
func (s *Store) mirror(entry TraceEntry, sessionID string) {
	if s.tracer == nil {
		return
	}

	_, span := s.tracer.Start(context.Background(), tracing.SpanPrefixOp+entry.OpID,
		trace.WithTimestamp(entry.StartedAt),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String(tracing.AttrEntryID, entry.ID),
		attribute.String(tracing.AttrOpID, entry.OpID),
		attribute.String(tracing.AttrSessionID, sessionID),
		attribute.Bool(tracing.AttrDeterministic, entry.Deterministic),
	)
	if entry.Seed != nil {
		span.SetAttributes(attribute.Int64(tracing.AttrSeed, *entry.Seed))
	}
	if entry.Error != "" {
		span.SetStatus(codes.Error, entry.Error)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(entry.StartedAt.Add(entry.Duration)))
}

func (s *Store) publish(eventType pubsub.EventType, event TraceEvent) {
	if s.broker == nil {
		return
	}
	s.broker.Publish(eventType, event)
}
