package logs

// Span identifies one unit of work, such as the expansion of a file.
type Span string

type spanKey struct{}

var SpanKey spanKey
