package tracing

// Span attribute keys for provenance mirroring. These are the semantic
// conventions for spans emitted by the trace store.
const (
	// Session attributes
	AttrSessionID = "session.id"

	// Trace entry attributes
	AttrEntryID       = "entry.id"
	AttrOpID          = "op.id"
	AttrDeterministic = "op.deterministic"
	AttrSeed          = "op.seed"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixOp       = "op."
	SpanPrefixRegistry = "registry."
)
