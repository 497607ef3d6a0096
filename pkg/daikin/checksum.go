// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import "fmt"

// ChecksumResult is the outcome of a frame checksum comparison.
// Expected and Actual are MSB-first bit strings.
type ChecksumResult struct {
	Matched  bool
	Expected string
	Actual   string
}

// CalculateChecksum returns the low byte of the sum of data
func CalculateChecksum(data []byte) byte {
	var sum uint
	for _, b := range data {
		sum += uint(b)
	}
	return byte(sum & 0xFF)
}

// ConfirmChecksum checks the trailing checksum byte of a frame.
//
// Every 8-bit group except the last is read LSB-first and summed; the low
// byte of the sum is the expected checksum. The last group, reversed, is the
// actual checksum. A trailing group shorter than 8 bits cannot match.
// Returns ErrInsufficientBits when b holds no complete byte at all.
func ConfirmChecksum(b Bits) (ChecksumResult, error) {
	if b.Len() < ByteBits {
		return ChecksumResult{}, fmt.Errorf("%w: have %d bits, need at least %d", ErrInsufficientBits, b.Len(), ByteBits)
	}

	groups := b.Groups(ByteBits)

	var sum uint
	for _, g := range groups[:len(groups)-1] {
		sum += uint(ReverseBits(g).MSBFirst())
	}
	expected := fmt.Sprintf("%08b", sum&0xFF)

	last := groups[len(groups)-1]
	actual := ReverseBits(last).String()

	return ChecksumResult{
		Matched:  expected == actual,
		Expected: expected,
		Actual:   actual,
	}, nil
}
