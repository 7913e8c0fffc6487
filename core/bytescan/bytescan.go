// core/bytescan/bytescan.go
//
// Package bytescan provides forward byte-search primitives over raw buffers.
// All functions return absolute offsets into p, or -1 when no match exists,
// and never allocate. They delegate to the bytes package, whose IndexByte
// and Count carry SIMD fast paths in the runtime.
package bytescan

import "bytes"

// Index returns the offset of the first occurrence of c in p at or after
// from, or -1. A from past the end of p is treated as "no match".
func Index(p []byte, from int, c byte) int {
	if from < 0 {
		from = 0
	}
	if from >= len(p) {
		return -1
	}
	i := bytes.IndexByte(p[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// IndexAny2 returns the smallest offset at or after from holding either a
// or b, or -1 if neither occurs.
func IndexAny2(p []byte, from int, a, b byte) int {
	ia := Index(p, from, a)
	ib := Index(p, from, b)
	switch {
	case ia < 0:
		return ib
	case ib < 0:
		return ia
	case ia < ib:
		return ia
	default:
		return ib
	}
}

// Count returns the number of occurrences of c in p.
func Count(p []byte, c byte) int {
	return bytes.Count(p, []byte{c})
}
