// Package envfile parses line-oriented dotenv documents into an ordered,
// immutable key→value mapping with parse diagnostics.
//
// The parser never fails on malformed content. Every anomaly it detects
// (unparsable line, whitespace in a variable name, duplicate key) is recorded
// as a [Diagnostic] on the returned [Document] and parsing continues. Only a
// missing or unreadable file produces an error-severity diagnostic, which
// callers must check before trusting the document's entries.
//
// Documents are constructed in a single forward pass and are immutable
// thereafter. The parser holds no global state, so documents may be parsed
// concurrently from any number of goroutines.
package envfile
