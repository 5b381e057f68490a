package compare

import (
	"testing"

	"github.com/ardnew/envcheck/envfile"
)

func TestDiffKeys(t *testing.T) {
	a := envfile.Parse("A=1\nB=2\nC=3\n", "a.env")
	b := envfile.Parse("B=2\nC=30\nD=4\n", "b.env")

	result := Diff(a, b, false)

	if len(result.OnlyInA) != 1 || result.OnlyInA[0] != "A" {
		t.Errorf("OnlyInA = %v, want [A]", result.OnlyInA)
	}

	if len(result.OnlyInB) != 1 || result.OnlyInB[0] != "D" {
		t.Errorf("OnlyInB = %v, want [D]", result.OnlyInB)
	}

	if result.ValueDifferences != nil {
		t.Errorf("ValueDifferences = %v, want none without includeValues",
			result.ValueDifferences)
	}
}

func TestDiffValues(t *testing.T) {
	a := envfile.Parse("A=1\nB=2\n", "a.env")
	b := envfile.Parse("A=1\nB=3\n", "b.env")

	result := Diff(a, b, true)

	if len(result.ValueDifferences) != 1 {
		t.Fatalf("ValueDifferences = %v, want one", result.ValueDifferences)
	}

	want := ValueDifference{Key: "B", ValueA: "2", ValueB: "3"}
	if result.ValueDifferences[0] != want {
		t.Errorf("difference = %+v, want %+v",
			result.ValueDifferences[0], want)
	}

	if len(result.OnlyInA) != 0 || len(result.OnlyInB) != 0 {
		t.Errorf("OnlyInA = %v, OnlyInB = %v, want empty",
			result.OnlyInA, result.OnlyInB)
	}
}

func TestDiffIdentical(t *testing.T) {
	a := envfile.Parse("A=1\nB=2\n", "a.env")
	b := envfile.Parse("A=1\nB=2\n", "b.env")

	result := Diff(a, b, true)

	if len(result.OnlyInA)+len(result.OnlyInB)+
		len(result.ValueDifferences) != 0 {
		t.Errorf("Diff of identical documents = %+v, want empty", result)
	}
}

func TestDiffInsertionOrder(t *testing.T) {
	a := envfile.Parse("Z=1\nM=2\nA=3\n", "a.env")
	b := envfile.Parse("", "b.env")

	result := Diff(a, b, false)

	want := []string{"Z", "M", "A"}
	for i, key := range result.OnlyInA {
		if key != want[i] {
			t.Fatalf("OnlyInA = %v, want %v", result.OnlyInA, want)
		}
	}
}
