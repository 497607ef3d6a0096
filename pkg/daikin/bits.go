// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"fmt"
	"strings"
)

// Bits is a bit vector in transmission order, one element (0 or 1) per bit.
// Daikin sends every byte and every field least significant bit first.
type Bits []uint8

// ParseBits builds Bits from a string of '0' and '1' characters.
// Spaces are ignored so grouped strings such as "10001000 01011011" parse.
func ParseBits(s string) (Bits, error) {
	b := make(Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			b = append(b, 0)
		case '1':
			b = append(b, 1)
		case ' ':
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", c, i)
		}
	}
	return b, nil
}

// MustParseBits is ParseBits for constant inputs; it panics on error
func MustParseBits(s string) Bits {
	b, err := ParseBits(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of bits
func (b Bits) Len() int {
	return len(b)
}

// Bit reports whether bit i is set
func (b Bits) Bit(i int) bool {
	return b[i] == 1
}

// Slice returns width bits starting at start, or an error if the range
// runs past the end
func (b Bits) Slice(start, width int) (Bits, error) {
	if start < 0 || width < 0 || start+width > len(b) {
		return nil, fmt.Errorf("bit range [%d:%d] out of bounds (have %d bits)", start, start+width, len(b))
	}
	return b[start : start+width], nil
}

// Uint interprets width bits at start as an LSB-first unsigned integer
func (b Bits) Uint(start, width int) (uint64, error) {
	if width > 64 {
		return 0, fmt.Errorf("bit width %d exceeds 64", width)
	}
	field, err := b.Slice(start, width)
	if err != nil {
		return 0, err
	}
	return ReverseBits(field).MSBFirst(), nil
}

// ReverseBits returns a reversed copy of b, turning an LSB-first sequence
// into an MSB-first one and back
func ReverseBits(b Bits) Bits {
	r := make(Bits, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}

// MSBFirst interprets b as an unsigned integer, most significant bit first
func (b Bits) MSBFirst() uint64 {
	var v uint64
	for _, bit := range b {
		v = v<<1 | uint64(bit&1)
	}
	return v
}

// Groups splits b into consecutive chunks of n bits.
// The last chunk is shorter when Len is not a multiple of n.
func (b Bits) Groups(n int) []Bits {
	var groups []Bits
	for start := 0; start < len(b); start += n {
		end := start + n
		if end > len(b) {
			end = len(b)
		}
		groups = append(groups, b[start:end])
	}
	return groups
}

// Bytes returns the complete bytes of b, each read LSB-first.
// A trailing partial byte is left out.
func (b Bits) Bytes() []byte {
	out := make([]byte, 0, len(b)/ByteBits)
	for start := 0; start+ByteBits <= len(b); start += ByteBits {
		v, _ := b.Uint(start, ByteBits)
		out = append(out, byte(v))
	}
	return out
}

// BitsFromBytes lays out data in transmission order (LSB-first per byte)
func BitsFromBytes(data []byte) Bits {
	b := make(Bits, 0, len(data)*ByteBits)
	for _, v := range data {
		for k := 0; k < ByteBits; k++ {
			b = append(b, (v>>k)&1)
		}
	}
	return b
}

// String renders b as '0'/'1' characters
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		if v == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// GroupedString renders b in space separated groups of n bits
func (b Bits) GroupedString(n int) string {
	groups := b.Groups(n)
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
