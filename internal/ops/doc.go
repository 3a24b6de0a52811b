// Package ops implements the feature-map helpers of a neocognitron layer:
// batch promotion, "same" padding computation and padding application.
//
// All functions are pure. Errors are reported through ErrInvalidRank and
// ErrInvalidDimension and can be inspected with errors.Is and errors.As.
package ops
