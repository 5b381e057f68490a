// Package compare implements the pure comparison algorithms that operate on
// parsed dotenv documents: schema checking against a ground truth file,
// symmetric diffing, per-variable explanation, and regex-based type
// inference.
//
// Every function in this package is a stateless transform over its inputs.
// Results are plain value records constructed fresh per invocation, so
// callers may compare independent documents concurrently.
package compare
