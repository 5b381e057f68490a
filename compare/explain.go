package compare

import (
	"strings"

	"github.com/ardnew/envcheck/envfile"
)

// ExplainResult describes a single variable from the ground truth document.
type ExplainResult struct {
	// Variable is the requested key, echoed back regardless of Found.
	Variable string `json:"variable"`

	// Found reports whether the variable exists in the document (exact-case
	// lookup). When false, no other field is populated.
	Found bool `json:"found"`

	// Purpose is the space-joined concatenation of the variable's preceding
	// comment lines; empty when the variable carries no comments.
	Purpose string `json:"purpose,omitempty"`

	// Comments is the raw ordered comment list.
	Comments []string `json:"comments,omitempty"`

	// ExampleValue is the variable's value as written in the ground truth.
	ExampleValue string `json:"exampleValue,omitempty"`

	// InferredType is the type tag produced by [InferType].
	InferredType string `json:"inferredType,omitempty"`
}

// Explain looks up key in the ground truth document and extracts its leading
// documentation comments, example value, and inferred type.
func Explain(example *envfile.Document, key string) ExplainResult {
	result := ExplainResult{Variable: key}

	entry, ok := example.Lookup(key)
	if !ok {
		return result
	}

	result.Found = true
	result.Purpose = strings.Join(entry.Comments, " ")
	result.Comments = entry.Comments
	result.ExampleValue = entry.Value
	result.InferredType = InferType(entry.Value)

	return result
}
