package cursor

// Span attaches a semantic tag to a cursor denoting a sub-range of text,
// typically one produced by a Focus operation. The embedded cursor makes
// every Cursor operation available on the span directly.
type Span[Kind any] struct {
	Kind Kind
	Cursor
}

// NewSpan attaches kind to a snapshot of c.
func NewSpan[Kind any](kind Kind, c *Cursor) *Span[Kind] {
	return &Span[Kind]{Kind: kind, Cursor: *c}
}

// ToKind returns a new span with a different tag over the same range. The
// spanned text is never copied or re-scanned.
func ToKind[Other, Kind any](s *Span[Kind], kind Other) *Span[Other] {
	return NewSpan(kind, &s.Cursor)
}
