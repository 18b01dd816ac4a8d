// Package workflow implements the user-facing operations: sync, setup,
// status, analyze, batch status, benchmark, and cache optimization,
// plus the default hook handlers they register.
//
// Every operation is a thin sequencing of session probes, config reads,
// and batched git invocations, logging its decisions along the way.
// Operations return an error as their success indicator; partial
// progress (a failed stage after successful ones) is surfaced to the
// caller, never rolled back.
package workflow
