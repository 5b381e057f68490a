package compare

import (
	"regexp"

	"github.com/ardnew/envcheck/envfile"
)

// CheckResult is the outcome of validating an environment document against
// its ground truth document.
type CheckResult struct {
	// Missing lists ground truth keys absent from the environment that are
	// not already explained by a case mismatch.
	Missing []string `json:"missing"`

	// Empty lists ground truth keys present in the environment with an empty
	// value.
	Empty []string `json:"empty"`

	// Extra lists environment keys absent from the ground truth that are not
	// the environment side of a case mismatch.
	Extra []string `json:"extra"`

	// CaseMismatches pairs environment keys with differently-cased ground
	// truth keys.
	CaseMismatches []CaseMismatch `json:"caseMismatches"`

	// Duplicates maps environment keys defined more than once to all of
	// their occurrence lines.
	Duplicates map[string][]int `json:"duplicates"`

	// WhitespaceIssues lists the raw key text of environment assignments
	// whose variable name carried surrounding whitespace.
	WhitespaceIssues []string `json:"whitespaceIssues"`

	// ErrorCount counts missing keys and case mismatches. WarningCount
	// counts empty values, extra keys, duplicates, and whitespace issues.
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
}

// Clean reports whether the check found nothing to complain about.
func (r CheckResult) Clean() bool {
	return r.ErrorCount == 0 && r.WarningCount == 0
}

// whitespaceIssuePattern extracts the offending raw key text from the
// parser's whitespace diagnostic message.
//
//nolint:gochecknoglobals
var whitespaceIssuePattern = regexp.MustCompile(
	`^Whitespace in variable name: "(.+)"$`,
)

// Check validates env against the ground truth document example.
//
// Direction matters throughout: example keys define the expected schema, and
// case mismatches pair an env-side key with its example-side spelling.
func Check(example, env *envfile.Document) CheckResult {
	result := CheckResult{
		CaseMismatches: CaseMismatches(env.Keys(), example.Keys()),
		Duplicates:     env.Duplicates(),
	}

	mismatchedExample := make(map[string]struct{}, len(result.CaseMismatches))
	mismatchedEnv := make(map[string]struct{}, len(result.CaseMismatches))

	for _, pair := range result.CaseMismatches {
		mismatchedExample[pair.Example] = struct{}{}
		mismatchedEnv[pair.Env] = struct{}{}
	}

	for key := range example.Entries() {
		entry, present := env.Lookup(key)

		if !present {
			if _, explained := mismatchedExample[key]; !explained {
				result.Missing = append(result.Missing, key)
			}

			continue
		}

		if entry.Value == "" {
			result.Empty = append(result.Empty, key)
		}
	}

	for key := range env.Entries() {
		if _, present := example.Lookup(key); present {
			continue
		}

		if _, explained := mismatchedEnv[key]; !explained {
			result.Extra = append(result.Extra, key)
		}
	}

	for _, diag := range env.Diagnostics() {
		if diag.Severity != envfile.SeverityWarning {
			continue
		}

		if m := whitespaceIssuePattern.FindStringSubmatch(diag.Message); m != nil {
			result.WhitespaceIssues = append(result.WhitespaceIssues, m[1])
		}
	}

	result.ErrorCount = len(result.Missing) + len(result.CaseMismatches)
	result.WarningCount = len(result.Empty) + len(result.Extra) +
		len(result.Duplicates) + len(result.WhitespaceIssues)

	return result
}
