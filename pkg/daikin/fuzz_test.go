// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package daikin

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

var (
	fuzzModes     = []Mode{ModeAuto, ModeDry, ModeCold, ModeWarm, ModeFan}
	fuzzFanSpeeds = []FanSpeed{FanLevel1, FanLevel2, FanLevel3, FanLevel4, FanLevel5, FanAuto, FanNight}
)

func randomSettings(rng *rand.Rand) Settings {
	s := Settings{
		Power:       rng.Intn(2) == 1,
		Mode:        fuzzModes[rng.Intn(len(fuzzModes))],
		Temperature: minTemperature + rng.Intn(maxTemperature-minTemperature+1),
		FanSpeed:    fuzzFanSpeeds[rng.Intn(len(fuzzFanSpeeds))],
		Swing:       rng.Intn(2) == 1,
		Powerful:    rng.Intn(2) == 1,
		Silent:      rng.Intn(2) == 1,
		Clock:       ClockTime(rng.Intn(24 * 60)),
	}
	if rng.Intn(2) == 1 {
		s.OnTimer = clockPtr(ClockTime(rng.Intn(24 * 60)))
	}
	if rng.Intn(2) == 1 {
		s.OffTimer = clockPtr(ClockTime(rng.Intn(24 * 60)))
	}
	return s
}

// jitter moves every duration by up to ±span, keeping it inside the windows
// and on its side of the bit threshold
func jitter(rng *rand.Rand, samples []Sample, span int) []Sample {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		delta := rng.Intn(2*span+1) - span
		out[i] = Sample{Polarity: s.Polarity, Duration: uint32(int(s.Duration) + delta)}
	}
	return out
}

// ============================================================
// Round Trip Fuzz Tests
// ============================================================

func TestFuzzAnalyze_RoundTrip(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for i := 0; i < rounds; i++ {
		want := randomSettings(rng)
		samples := synthesizeCapture(firstFrameBytes(), clockFrameBytes(want.Clock), settingsFrameBytes(want))
		samples = jitter(rng, samples, 40)

		report, err := Analyze(samples)
		if err != nil {
			t.Fatalf("Round %d: Analyze error: %v", i, err)
		}
		if !report.ChecksumsOK() {
			t.Fatalf("Round %d: checksum mismatch", i)
		}
		if len(report.Warnings) != 0 {
			t.Fatalf("Round %d: unexpected warnings %v", i, report.Warnings)
		}
		compareSettings(t, report.Settings, want)
		if t.Failed() {
			t.Fatalf("Round %d: settings mismatch for %+v", i, want)
		}
	}
}

func TestFuzzAnalyze_FlippedBitBreaksChecksum(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for i := 0; i < rounds; i++ {
		frames := [][]byte{firstFrameBytes(), clockFrameBytes(0), settingsFrameBytes(randomSettings(rng))}
		target := rng.Intn(FrameCount)
		pos := rng.Intn(len(frames[target]))
		frames[target][pos] ^= 1 << uint(rng.Intn(ByteBits))

		report, err := DecodeCapture(synthesizeCapture(frames...))
		if err != nil {
			t.Fatalf("Round %d: DecodeCapture error: %v", i, err)
		}
		if report.Frames[target].Checksum.Matched {
			t.Fatalf("Round %d: flipped bit in frame %d byte %d still matched", i, target, pos)
		}
	}
}

// ============================================================
// Robustness Fuzz Tests
// ============================================================

func TestFuzzAnalyze_RandomDurations(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for i := 0; i < rounds; i++ {
		n := rng.Intn(600)
		d := make([]uint32, n)
		for j := range d {
			d[j] = uint32(rng.Intn(45000))
		}

		// Must not panic; errors are expected
		report, err := Analyze(alternating(d...))
		if err == nil && len(report.Frames) != FrameCount {
			t.Fatalf("Round %d: report with %d frames", i, len(report.Frames))
		}
	}
}

func TestFuzzSegmenter_FeedMatchesSegment(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for i := 0; i < rounds; i++ {
		want := randomSettings(rng)
		samples := synthesizeCapture(firstFrameBytes(), clockFrameBytes(want.Clock), settingsFrameBytes(want))
		// Random truncation exercises every Finish path
		samples = samples[:rng.Intn(len(samples)+1)]

		batch := Segment(samples)

		s := NewSegmenter()
		var fed []Frame
		for _, sample := range samples {
			if f := s.Feed(sample); f != nil {
				fed = append(fed, *f)
			}
		}
		if f := s.Finish(); f != nil {
			fed = append(fed, *f)
		}

		if len(fed) != len(batch) {
			t.Fatalf("Round %d: Feed produced %d frames, Segment %d", i, len(fed), len(batch))
		}
		for j := range fed {
			if !equalDurations(durations(fed[j].Samples), durations(batch[j].Samples)) {
				t.Fatalf("Round %d: frame %d differs between Feed and Segment", i, j)
			}
		}
	}
}
