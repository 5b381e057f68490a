package compare

import "strings"

// CaseMismatch pairs a key from the environment document with the
// differently-cased ground truth key it matches. A mismatched pair is treated
// as one misnamed variable rather than an independent missing key plus extra
// key.
type CaseMismatch struct {
	// Env is the key as written in the environment document.
	Env string `json:"env"`
	// Example is the key as written in the ground truth document.
	Example string `json:"example"`
}

// CaseMismatches reports every key in keysA whose case-insensitive match in
// keysB differs from it in letter case. Exact-case matches are excluded.
//
// When two keys in keysB differ only by case, the last one processed wins the
// lookup slot; the tie-break is documented rather than meaningful.
func CaseMismatches(keysA, keysB []string) []CaseMismatch {
	lookup := make(map[string]string, len(keysB))
	for _, key := range keysB {
		lookup[strings.ToLower(key)] = key
	}

	var pairs []CaseMismatch

	for _, key := range keysA {
		match, ok := lookup[strings.ToLower(key)]
		if ok && match != key {
			pairs = append(pairs, CaseMismatch{Env: key, Example: match})
		}
	}

	return pairs
}
