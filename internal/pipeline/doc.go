// Package pipeline loads and parses FASTA inputs in parallel and hands
// every record to a visit callback in deterministic order (file order,
// then record order within each file).
//
// Parsing is the parallel part; emission is strictly sequential, so
// callers see identical streams regardless of --threads.
package pipeline
