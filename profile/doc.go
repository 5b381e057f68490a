// Package profile provides optional runtime profiling for the envcheck
// application.
//
// This package integrates [github.com/pkg/profile] to provide runtime
// profiling with conditional compilation support. Profiling must be enabled
// at build time using the "pprof" build tag:
//
//	go build -tags pprof .
//
// When built without the tag (default), all operations are no-ops with zero
// runtime overhead.
//
// The supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread, and trace. Use [Modes] to retrieve the list
// programmatically. Profile files are written to the configured output
// directory with names matching the profiling mode (e.g., cpu.pprof).
//
// Analyze profile data with the standard tooling:
//
//	go tool pprof ./envcheck /path/to/cpu.pprof
//	go tool pprof -http=: /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
