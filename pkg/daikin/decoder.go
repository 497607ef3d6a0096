// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

// DecodeFrame converts a frame's samples into bits.
//
// The first three retained samples (start peak, start trough and the first
// separator pulse) carry no data. From the rest every second sample is
// classified against BitThreshold, starting with the first one. Selection
// follows polarity: only samples with the same polarity as the first data
// sample are kept, which is every even offset in a well-formed stream and
// stays in phase when a capture drops a sample.
func DecodeFrame(f Frame) Bits {
	if len(f.Samples) <= frameArtifacts {
		return Bits{}
	}

	data := f.Samples[frameArtifacts:]
	bitPolarity := data[0].Polarity
	bits := make(Bits, 0, len(data)/2+1)
	for _, s := range data {
		if s.Polarity != bitPolarity {
			continue
		}
		bits = append(bits, ClassifyBit(s.Duration))
	}
	return bits
}

// DecodeFrames decodes every frame in order
func DecodeFrames(frames []Frame) []Bits {
	out := make([]Bits, len(frames))
	for i, f := range frames {
		out[i] = DecodeFrame(f)
	}
	return out
}
