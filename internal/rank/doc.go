// Package rank keeps scored candidates in best-first order.
//
// Set is a binary max-heap over float64 scores. Non-finite scores are
// rejected on insert so the heap never holds values that cannot be ordered.
// Equal scores are ordered by a caller-supplied tie-break on the values,
// which makes the order independent of insertion order.
//
// A Set is not safe for concurrent use.
package rank
