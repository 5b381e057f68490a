package compare

import "github.com/ardnew/envcheck/envfile"

// ValueDifference records one key present in both documents with differing
// values.
type ValueDifference struct {
	Key    string `json:"key"`
	ValueA string `json:"valueA"`
	ValueB string `json:"valueB"`
}

// DiffResult is the symmetric difference of two documents' key sets, plus
// optional value differences for shared keys.
type DiffResult struct {
	OnlyInA          []string          `json:"onlyInA"`
	OnlyInB          []string          `json:"onlyInB"`
	ValueDifferences []ValueDifference `json:"valueDifferences,omitempty"`
}

// Diff compares the key sets of a and b. When includeValues is true, keys
// present in both documents with differing values are reported as
// [ValueDifference] triples. Output follows each document's insertion order.
func Diff(a, b *envfile.Document, includeValues bool) DiffResult {
	var result DiffResult

	for key, entry := range a.Entries() {
		other, present := b.Lookup(key)
		if !present {
			result.OnlyInA = append(result.OnlyInA, key)

			continue
		}

		if includeValues && entry.Value != other.Value {
			result.ValueDifferences = append(result.ValueDifferences,
				ValueDifference{
					Key:    key,
					ValueA: entry.Value,
					ValueB: other.Value,
				})
		}
	}

	for key := range b.Entries() {
		if _, present := a.Lookup(key); !present {
			result.OnlyInB = append(result.OnlyInB, key)
		}
	}

	return result
}
