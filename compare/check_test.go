package compare

import (
	"testing"

	"github.com/ardnew/envcheck/envfile"
)

func TestCheckReport(t *testing.T) {
	example := envfile.Parse("A=1\nB=\n", ".env.example")
	env := envfile.Parse("a=1\nC=3\n", ".env")

	result := Check(example, env)

	if len(result.CaseMismatches) != 1 {
		t.Fatalf("CaseMismatches = %v, want one pair", result.CaseMismatches)
	}

	pair := result.CaseMismatches[0]
	if pair.Env != "a" || pair.Example != "A" {
		t.Errorf("mismatch = %+v, want env a example A", pair)
	}

	if len(result.Missing) != 1 || result.Missing[0] != "B" {
		t.Errorf("Missing = %v, want [B]", result.Missing)
	}

	if len(result.Extra) != 1 || result.Extra[0] != "C" {
		t.Errorf("Extra = %v, want [C]", result.Extra)
	}

	if len(result.Empty) != 0 {
		t.Errorf("Empty = %v, want none", result.Empty)
	}

	if result.ErrorCount != 2 {
		t.Errorf("ErrorCount = %d, want 2", result.ErrorCount)
	}

	if result.WarningCount != 1 {
		t.Errorf("WarningCount = %d, want 1", result.WarningCount)
	}

	if result.Clean() {
		t.Error("Clean() = true for failing check")
	}
}

func TestCheckClean(t *testing.T) {
	example := envfile.Parse("A=1\nB=2\n", ".env.example")
	env := envfile.Parse("A=10\nB=20\n", ".env")

	result := Check(example, env)

	if !result.Clean() {
		t.Errorf("Clean() = false: %+v", result)
	}
}

func TestCheckEmptyValues(t *testing.T) {
	example := envfile.Parse("A=1\nB=2\n", ".env.example")
	env := envfile.Parse("A=\nB=2\n", ".env")

	result := Check(example, env)

	if len(result.Empty) != 1 || result.Empty[0] != "A" {
		t.Errorf("Empty = %v, want [A]", result.Empty)
	}

	if result.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d, want 0", result.ErrorCount)
	}

	if result.WarningCount != 1 {
		t.Errorf("WarningCount = %d, want 1", result.WarningCount)
	}
}

func TestCheckEnvDiagnostics(t *testing.T) {
	example := envfile.Parse("A=1\n", ".env.example")
	env := envfile.Parse("A=1\nA=2\n  B  =3\n", ".env")

	result := Check(example, env)

	if lines, ok := result.Duplicates["A"]; !ok || len(lines) != 2 {
		t.Errorf("Duplicates[A] = %v, want two lines", lines)
	}

	if len(result.WhitespaceIssues) != 1 ||
		result.WhitespaceIssues[0] != "  B  " {
		t.Errorf("WhitespaceIssues = %q, want raw key text",
			result.WhitespaceIssues)
	}

	// One duplicate, one whitespace issue, one extra key (B).
	if result.WarningCount != 3 {
		t.Errorf("WarningCount = %d, want 3", result.WarningCount)
	}
}

func TestCheckMissingEnvFile(t *testing.T) {
	example := envfile.Parse("A=1\nB=2\n", ".env.example")
	env := envfile.Parse("", ".env")

	result := Check(example, env)

	if len(result.Missing) != 2 {
		t.Errorf("Missing = %v, want every declared key", result.Missing)
	}

	if result.ErrorCount != 2 {
		t.Errorf("ErrorCount = %d, want 2", result.ErrorCount)
	}
}
