package ops

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidRank      = errors.New("invalid rank: only rank 3 or rank 4 feature maps are supported")
	ErrInvalidDimension = errors.New("invalid dimension: sizes and stride must be positive")
)

// RankError reports a feature map whose rank the operation cannot handle.
type RankError struct {
	Op   string // Operation that rejected the input
	Rank int    // Rank of the offending input (0 for nil)
	Want string // Accepted ranks, human-readable
}

// Error implements the error interface.
func (e *RankError) Error() string {
	return fmt.Sprintf("%s: rank %d not supported (want %s)", e.Op, e.Rank, e.Want)
}

// Is makes errors.Is(err, ErrInvalidRank) hold.
func (e *RankError) Is(target error) bool {
	return target == ErrInvalidRank
}

// DimensionError reports a size, kernel extent, stride or padding that is out of range.
type DimensionError struct {
	Op    string
	Name  string
	Value int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s = %d is out of range", e.Op, e.Name, e.Value)
}

// Is makes errors.Is(err, ErrInvalidDimension) hold.
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}
