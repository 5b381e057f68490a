package envfile

import (
	"iter"
	"maps"
	"slices"
)

// Document is the result of parsing one dotenv source.
//
// Entries are stored in first-seen insertion order so that iteration produces
// deterministic output across runs, independent of map hashing. A Document is
// immutable once returned by the parser.
type Document struct {
	path        string
	keys        []string
	entries     map[string]Entry
	duplicates  map[string][]int
	diagnostics []Diagnostic
}

// Path returns the resolved source path of the document.
// It is intended for error messages only.
func (d *Document) Path() string { return d.path }

// Len returns the number of distinct keys in the document.
func (d *Document) Len() int { return len(d.keys) }

// Keys returns the document's keys in first-seen insertion order.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// Entries returns an iterator over the document's entries in first-seen
// insertion order.
func (d *Document) Entries() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for _, key := range d.keys {
			if !yield(key, d.entries[key]) {
				return
			}
		}
	}
}

// Lookup returns the entry for key (exact case) and whether it exists.
func (d *Document) Lookup(key string) (Entry, bool) {
	entry, ok := d.entries[key]

	return entry, ok
}

// Duplicates returns a copy of the mapping from key to all of its occurrence
// line numbers, populated only for keys that appeared two or more times.
func (d *Document) Duplicates() map[string][]int {
	if len(d.duplicates) == 0 {
		return nil
	}

	dup := make(map[string][]int, len(d.duplicates))
	for key, lines := range d.duplicates {
		dup[key] = slices.Clone(lines)
	}

	return dup
}

// Diagnostics returns the ordered parse diagnostics for the document.
func (d *Document) Diagnostics() []Diagnostic {
	return slices.Clone(d.diagnostics)
}

// HasErrors reports whether any diagnostic carries error severity.
// Callers must not trust the document's entries when it does.
func (d *Document) HasErrors() bool {
	return slices.ContainsFunc(d.diagnostics, func(g Diagnostic) bool {
		return g.Severity == SeverityError
	})
}

// Filter returns a new document containing only the entries for which keep
// returns true, preserving insertion order. Diagnostics are carried over
// unchanged; duplicate line records are retained only for surviving keys.
func (d *Document) Filter(keep func(Entry) bool) *Document {
	doc := &Document{
		path:        d.path,
		entries:     make(map[string]Entry, len(d.entries)),
		diagnostics: slices.Clone(d.diagnostics),
	}

	for _, key := range d.keys {
		entry := d.entries[key]
		if !keep(entry) {
			continue
		}

		doc.keys = append(doc.keys, key)
		doc.entries[key] = entry

		if lines, ok := d.duplicates[key]; ok {
			if doc.duplicates == nil {
				doc.duplicates = make(map[string][]int)
			}

			doc.duplicates[key] = slices.Clone(lines)
		}
	}

	return doc
}

// Equal reports whether two documents are structurally equal: same entries in
// the same order, same duplicate records, and same diagnostics.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return slices.Equal(d.keys, other.keys) &&
		maps.EqualFunc(d.entries, other.entries, entryEqual) &&
		maps.EqualFunc(d.duplicates, other.duplicates, slices.Equal) &&
		slices.Equal(d.diagnostics, other.diagnostics)
}

func entryEqual(a, b Entry) bool {
	return a.Key == b.Key &&
		a.Value == b.Value &&
		a.Line == b.Line &&
		a.Quote == b.Quote &&
		a.Quoted == b.Quoted &&
		slices.Equal(a.Comments, b.Comments)
}
