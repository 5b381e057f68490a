package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/envcheck/compare"
	"github.com/ardnew/envcheck/envfile"
)

// Styles applied to text-format reports.
//
//nolint:gochecknoglobals
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	keyStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// sensitiveTerms flags variables whose values are masked in text output.
// Matching is a case-insensitive substring test against the variable name.
//
//nolint:gochecknoglobals
var sensitiveTerms = []string{
	"password", "secret", "key", "token", "auth", "credential", "private",
}

// sensitive reports whether a variable name looks like it holds a secret.
func sensitive(key string) bool {
	k := strings.ToLower(key)

	for _, term := range sensitiveTerms {
		if strings.Contains(k, term) {
			return true
		}
	}

	return false
}

// maskValue replaces sensitive non-empty values with a fixed placeholder.
// Masking affects display only. The underlying results are never altered.
func maskValue(key, value string) string {
	if value == "" || !sensitive(key) {
		return value
	}

	return "********"
}

// renderCheck writes the text-format validation report.
func renderCheck(
	w io.Writer,
	result compare.CheckResult,
	example, env *envfile.Document,
) {
	fmt.Fprintln(w, headerStyle.Render(
		fmt.Sprintf("check %s against %s", env.Path(), example.Path()),
	))

	for _, diag := range env.Diagnostics() {
		style := warningStyle
		if diag.Severity == envfile.SeverityError {
			style = errorStyle
		}

		fmt.Fprintf(w, "%s %s\n",
			style.Render(diag.Severity.String()+":"),
			fmt.Sprintf("line %d: %s", diag.Line, diag.Message),
		)
	}

	for _, key := range result.Missing {
		fmt.Fprintf(w, "%s %s is not defined\n",
			errorStyle.Render("missing:"), keyStyle.Render(key),
		)
	}

	for _, mismatch := range result.CaseMismatches {
		fmt.Fprintf(w, "%s %s is declared as %s\n",
			errorStyle.Render("case mismatch:"),
			keyStyle.Render(mismatch.Env),
			keyStyle.Render(mismatch.Example),
		)
	}

	for _, key := range result.Empty {
		fmt.Fprintf(w, "%s %s has an empty value\n",
			warningStyle.Render("empty:"), keyStyle.Render(key),
		)
	}

	for _, key := range result.Extra {
		fmt.Fprintf(w, "%s %s is not declared in %s\n",
			warningStyle.Render("extra:"),
			keyStyle.Render(key),
			example.Path(),
		)
	}

	switch {
	case result.ErrorCount > 0:
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(
			"%d error(s), %d warning(s)",
			result.ErrorCount, result.WarningCount,
		)))

	case result.WarningCount > 0:
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(
			"0 error(s), %d warning(s)", result.WarningCount,
		)))

	default:
		fmt.Fprintln(w, okStyle.Render("ok"))
	}
}

// renderDiff writes the text-format comparison report.
func renderDiff(
	w io.Writer,
	result compare.DiffResult,
	a, b *envfile.Document,
	mask bool,
) {
	fmt.Fprintln(w, headerStyle.Render(
		fmt.Sprintf("diff %s %s", a.Path(), b.Path()),
	))

	for _, key := range result.OnlyInA {
		fmt.Fprintf(w, "%s %s\n",
			warningStyle.Render("only in "+a.Path()+":"),
			keyStyle.Render(key),
		)
	}

	for _, key := range result.OnlyInB {
		fmt.Fprintf(w, "%s %s\n",
			warningStyle.Render("only in "+b.Path()+":"),
			keyStyle.Render(key),
		)
	}

	display := func(key, value string) string {
		if mask {
			return maskValue(key, value)
		}

		return value
	}

	for _, diff := range result.ValueDifferences {
		fmt.Fprintf(w, "%s %s: %s %s %s\n",
			warningStyle.Render("differs:"),
			keyStyle.Render(diff.Key),
			display(diff.Key, diff.ValueA),
			dimStyle.Render("!="),
			display(diff.Key, diff.ValueB),
		)
	}

	if len(result.OnlyInA) == 0 && len(result.OnlyInB) == 0 &&
		len(result.ValueDifferences) == 0 {
		fmt.Fprintln(w, okStyle.Render("no differences"))
	}
}

// renderExplain writes the text-format variable description.
func renderExplain(w io.Writer, result compare.ExplainResult) {
	fmt.Fprintln(w, keyStyle.Render(result.Variable))

	if result.Purpose != "" {
		fmt.Fprintf(w, "  purpose: %s\n", result.Purpose)
	}

	fmt.Fprintf(w, "  type: %s\n", result.InferredType)

	if result.ExampleValue != "" {
		fmt.Fprintf(w, "  example: %s\n", result.ExampleValue)
	}

	if result.Purpose == "" {
		fmt.Fprintln(w, dimStyle.Render("  (no documenting comments)"))
	}
}
