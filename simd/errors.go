package simd

import (
	"errors"
	"fmt"
)

// ErrShortOutput is returned when an output slice cannot hold one value per
// segment.
var ErrShortOutput = errors.New("simd: output slice too short")

// ErrLengthMismatch indicates longitude and latitude slices of different
// lengths.
type ErrLengthMismatch struct {
	Longitudes int
	Latitudes  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("simd: length mismatch: %d longitudes, %d latitudes", e.Longitudes, e.Latitudes)
}

func checkLengths(lons, lats []float32) error {
	if len(lons) != len(lats) {
		return &ErrLengthMismatch{Longitudes: len(lons), Latitudes: len(lats)}
	}
	return nil
}
