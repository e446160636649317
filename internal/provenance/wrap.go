package provenance

import (
	"context"
	"fmt"
)

// WithTrace wraps fn so that every call appends exactly one trace entry
// to the store: duration, inputs keyed arg0, arg1 and so on, a result
// record on success, the error message on failure. The wrapped call's
// result and error pass through unchanged; tracing never alters control
// flow or swallows errors.
func (s *Store) WithTrace(opID string, fn func(args ...any) (any, error)) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		start := s.clock()
		entry := TraceEntry{
			OpID:          opID,
			StartedAt:     start,
			Inputs:        positional(args),
			Deterministic: true,
		}

		// The deferred append runs exactly once per call, even when the
		// wrapped function panics.
		defer func() {
			entry.Duration = s.clock().Sub(start)
			s.AddEntry(entry)
		}()

		result, err := fn(args...)
		if err != nil {
			entry.Error = err.Error()
			return result, err
		}
		entry.Outputs = map[string]any{"result": result}
		return result, nil
	}
}

// WithTraceContext is WithTrace for context-aware functions. The wrapped
// call may block on ctx; the accounting itself never does.
func (s *Store) WithTraceContext(opID string, fn func(ctx context.Context, args ...any) (any, error)) func(ctx context.Context, args ...any) (any, error) {
	return func(ctx context.Context, args ...any) (any, error) {
		start := s.clock()
		entry := TraceEntry{
			OpID:          opID,
			StartedAt:     start,
			Inputs:        positional(args),
			Deterministic: true,
		}

		defer func() {
			entry.Duration = s.clock().Sub(start)
			s.AddEntry(entry)
		}()

		result, err := fn(ctx, args...)
		if err != nil {
			entry.Error = err.Error()
			return result, err
		}
		entry.Outputs = map[string]any{"result": result}
		return result, nil
	}
}

// positional keys variadic arguments as arg0, arg1 and so on, matching
// how trace entries record inputs.
func positional(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	inputs := make(map[string]any, len(args))
	for i, arg := range args {
		inputs[fmt.Sprintf("arg%d", i)] = arg
	}
	return inputs
}
