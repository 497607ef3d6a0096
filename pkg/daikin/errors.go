// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"errors"
	"fmt"
)

// ErrInsufficientBits is returned when a frame is too short to hold a
// checksum byte. It means the capture was mis-segmented or truncated.
var ErrInsufficientBits = errors.New("checksum binary length insufficient")

// ErrFieldOutOfRange is returned when a settings field lies past the end of
// its frame
var ErrFieldOutOfRange = errors.New("field out of range")

// FrameCountError is returned when a capture does not split into exactly
// FrameCount frames
type FrameCountError struct {
	Expected int
	Got      int
}

// Error implements the error interface
func (e *FrameCountError) Error() string {
	return fmt.Sprintf("frame count mismatch: expected %d, got %d", e.Expected, e.Got)
}

// IsFrameCountError returns true if err is or wraps a FrameCountError
func IsFrameCountError(err error) bool {
	var fce *FrameCountError
	return errors.As(err, &fce)
}
