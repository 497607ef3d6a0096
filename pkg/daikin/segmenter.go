// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

// Frame holds the samples of one message, after its start marker
type Frame struct {
	Index   int
	Samples []Sample
}

// Segmenter states (internal)
const (
	stateSeeking = iota
	stateAccumulating
)

// markerLength is the number of samples a start marker spans
const markerLength = 3

// Segmenter splits a timing stream into frames at start markers.
//
// It holds back the last two samples it was fed, since a start marker can
// only be recognised once its peak and trough have arrived. The message gap
// sample of a marker is consumed; the peak and trough stay in the new frame
// and are dropped later by DecodeFrame.
type Segmenter struct {
	state     int
	pending   []Sample
	current   *Frame
	nextIndex int
	discarded int
	markers   int
}

// NewSegmenter creates a segmenter in the seeking state
func NewSegmenter() *Segmenter {
	return &Segmenter{
		state:   stateSeeking,
		pending: make([]Sample, 0, markerLength),
	}
}

// Reset returns the segmenter to the seeking state and drops buffered samples
func (s *Segmenter) Reset() {
	s.state = stateSeeking
	s.pending = s.pending[:0]
	s.current = nil
	s.nextIndex = 0
	s.discarded = 0
	s.markers = 0
}

// Discarded returns how many samples were dropped before the first marker
func (s *Segmenter) Discarded() int {
	return s.discarded
}

// Markers returns how many start markers were found so far
func (s *Segmenter) Markers() int {
	return s.markers
}

// Feed processes the next sample of the stream.
// Returns the previous frame when a new start marker closes it, nil otherwise.
func (s *Segmenter) Feed(sample Sample) *Frame {
	s.pending = append(s.pending, sample)
	if len(s.pending) < markerLength {
		return nil
	}

	emitted := s.step(IsStartMarker(s.pending, 0))
	s.pending = append(s.pending[:0], s.pending[1:]...)
	return emitted
}

// Finish flushes the held-back samples and returns the open frame, if any.
// The segmenter goes back to seeking; counters are kept until Reset.
func (s *Segmenter) Finish() *Frame {
	// Fewer than three samples remain, none of them can start a marker
	for len(s.pending) > 0 {
		s.step(false)
		s.pending = s.pending[1:]
	}

	last := s.current
	s.current = nil
	s.state = stateSeeking
	s.pending = s.pending[:0]
	return last
}

// step handles pending[0]
func (s *Segmenter) step(marker bool) *Frame {
	if marker {
		s.markers++
		closed := s.current
		s.current = &Frame{Index: s.nextIndex}
		s.nextIndex++
		s.state = stateAccumulating
		return closed
	}

	switch s.state {
	case stateSeeking:
		s.discarded++
	case stateAccumulating:
		s.current.Samples = append(s.current.Samples, s.pending[0])
	}
	return nil
}

// Segment splits a complete timing stream into frames
func Segment(samples []Sample) []Frame {
	frames, _ := segment(samples)
	return frames
}

// segment also returns the segmenter for its counters
func segment(samples []Sample) ([]Frame, *Segmenter) {
	s := NewSegmenter()
	var frames []Frame
	for _, sample := range samples {
		if f := s.Feed(sample); f != nil {
			frames = append(frames, *f)
		}
	}
	if f := s.Finish(); f != nil {
		frames = append(frames, *f)
	}
	return frames, s
}
