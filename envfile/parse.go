package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxSyntaxExcerpt bounds how much of an unparsable line is echoed in its
// diagnostic message.
const maxSyntaxExcerpt = 50

// ParseFile reads the file at path and parses it. A missing or unreadable
// file yields a document with zero entries and a single error-severity
// diagnostic; content problems never fail the parse.
func ParseFile(path string) *Document {
	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &Document{
			path:    resolved,
			entries: map[string]Entry{},
			diagnostics: []Diagnostic{{
				Message:  fmt.Sprintf("File not found: %s", path),
				Severity: SeverityError,
			}},
		}
	}

	return Parse(string(data), resolved)
}

// Parse converts raw dotenv text into a [Document] in a single forward pass.
// The path is recorded for error messages only; no I/O is performed.
func Parse(text, path string) *Document {
	doc := &Document{
		path:    path,
		entries: make(map[string]Entry),
	}

	// Comment lines accumulate here until attached to the next assignment.
	// A blank line or any non-comment, non-assignment line clears the buffer
	// so comments never leak across an unrelated boundary.
	var pending []string

	occurrences := make(map[string][]int)

	for i, raw := range strings.Split(text, "\n") {
		line := i + 1
		raw = strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(raw)

		switch {
		case trimmed == "":
			pending = nil

			continue

		case strings.HasPrefix(trimmed, "#"):
			pending = append(
				pending,
				strings.TrimSpace(strings.TrimPrefix(trimmed, "#")),
			)

			continue
		}

		rawKey, rawValue, ok := strings.Cut(raw, "=")
		if !ok {
			doc.warnf(line, "Invalid syntax: %s", excerpt(trimmed))

			pending = nil

			continue
		}

		key := strings.TrimSpace(rawKey)
		if key != rawKey {
			doc.warnf(line, "Whitespace in variable name: %q", rawKey)
		}

		value, quote := parseValue(rawValue)

		occurrences[key] = append(occurrences[key], line)

		// Last occurrence wins: overwrite value, line, and comments, but keep
		// the key's original position in insertion order.
		if _, seen := doc.entries[key]; !seen {
			doc.keys = append(doc.keys, key)
		}

		doc.entries[key] = Entry{
			Key:      key,
			Value:    value,
			Line:     line,
			Comments: pending,
			Quote:    quote,
			Quoted:   quote != QuoteNone,
		}

		pending = nil
	}

	for _, key := range doc.keys {
		lines := occurrences[key]
		if len(lines) < 2 {
			continue
		}

		if doc.duplicates == nil {
			doc.duplicates = make(map[string][]int)
		}

		doc.duplicates[key] = lines

		doc.warnf(lines[len(lines)-1],
			"Duplicate variable %q: also defined on line(s) %s",
			key, joinLines(lines[:len(lines)-1]),
		)
	}

	return doc
}

// parseValue interprets the raw text to the right of the first `=`.
//
// Values wrapped in matching double or single quotes are unquoted; only
// double-quoted values are unescaped (`\"`, `\n`, `\t`). A value that opens
// with a quote but never closes it is passed through unchanged: multi-line
// quoted values are not supported. Unquoted values are cut at the first
// literal ` #`, which begins an inline comment.
func parseValue(raw string) (string, QuoteStyle) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if first == last && (first == '"' || first == '\'') {
			inner := trimmed[1 : len(trimmed)-1]
			if first == '"' {
				return unescapeDouble(inner), QuoteDouble
			}

			return inner, QuoteSingle
		}
	}

	if len(trimmed) > 0 && (trimmed[0] == '"' || trimmed[0] == '\'') {
		return trimmed, QuoteNone
	}

	// The comment cut scans the untrimmed text so that a value which is
	// nothing but an inline comment (`KEY= # note`) still yields "".
	if idx := strings.Index(raw, " #"); idx >= 0 {
		return strings.TrimSpace(raw[:idx]), QuoteNone
	}

	return trimmed, QuoteNone
}

//nolint:gochecknoglobals
var doubleQuoteUnescaper = strings.NewReplacer(
	`\"`, `"`,
	`\n`, "\n",
	`\t`, "\t",
)

func unescapeDouble(s string) string {
	return doubleQuoteUnescaper.Replace(s)
}

// excerpt truncates a line for inclusion in a diagnostic message.
func excerpt(line string) string {
	runes := []rune(line)
	if len(runes) <= maxSyntaxExcerpt {
		return line
	}

	return string(runes[:maxSyntaxExcerpt]) + "..."
}

func joinLines(lines []int) string {
	text := make([]string, len(lines))
	for i, n := range lines {
		text[i] = strconv.Itoa(n)
	}

	return strings.Join(text, ", ")
}

func (d *Document) warnf(line int, format string, args ...any) {
	d.diagnostics = append(d.diagnostics, Diagnostic{
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	})
}
