// Package writers turns parsed records and stats into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (pretty blocks, JSON/JSONL/FASTA/TSV).
//   • Parsing stays in refasta-core; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
