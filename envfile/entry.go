package envfile

//go:generate go tool stringer --linecomment --type Severity,QuoteStyle --output entry_string.go

// Severity classifies a parse diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota // warning
	SeverityError                   // error
)

// QuoteStyle identifies how a value was quoted in its source line.
type QuoteStyle int

const (
	QuoteNone   QuoteStyle = iota // none
	QuoteSingle                   // single
	QuoteDouble                   // double
)

// Entry is one resolved assignment surviving in a parsed document after
// duplicate resolution.
type Entry struct {
	// Key is the variable name, exact-case as written, with surrounding
	// whitespace trimmed.
	Key string

	// Value is the fully unquoted and unescaped value text.
	Value string

	// Line is the 1-based source line of the final occurrence of Key.
	Line int

	// Comments holds the contiguous block of `#` comment lines immediately
	// above the final occurrence, in order, each with the leading `#` and
	// surrounding whitespace stripped.
	Comments []string

	// Quote records the quoting style of the value, and Quoted reports
	// whether the value was wrapped in matching quotes at all.
	Quote  QuoteStyle
	Quoted bool
}

// Diagnostic is a structured record describing a parse-time anomaly.
// Diagnostics are attached to the document rather than returned as errors.
type Diagnostic struct {
	// Line is the 1-based source line the anomaly was detected on, or 0 when
	// no line applies (for example, an unreadable file).
	Line int

	// Message is the human-readable description of the anomaly.
	Message string

	// Severity distinguishes recoverable warnings from fatal errors.
	Severity Severity
}
