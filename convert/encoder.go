// Package convert drives PCM through the full encoding pipeline: truncate,
// resample, pre-filter, leading zero normalization, then the brute force
// block search.
package convert

import (
	"fmt"
	"math"

	"github.com/brrsuite/wav2brr/brr"
	"github.com/brrsuite/wav2brr/resample"
)

// A PreFilter reshapes the waveform in place before encoding.
type PreFilter func(samples []int16)

// Encoder collects the pipeline options. A single Encode call runs the
// whole pipeline; the struct itself holds no state between calls.
type Encoder struct {
	Resampler resample.Resampler
	Filters   []PreFilter

	// ResampleFactor is the ratio input rate / target rate.
	ResampleFactor float64

	// Truncate bounds how many input samples are used; zero or negative
	// disables it.
	Truncate int

	// LeadingZeros forces a minimum count of leading zero samples at the
	// output start, capped at MAX_LEADING_ZEROS. Negative disables the
	// normalization beyond block alignment.
	LeadingZeros int

	EnableFilter       [4]bool
	ForceFilter0OnLoop bool
}

// NewEncoder returns an encoder with the usual defaults: linear
// resampling at unity ratio, every filter enabled, no forced zeros.
func NewEncoder() *Encoder {
	return &Encoder{
		Resampler:      resample.Linear,
		ResampleFactor: 1,
		LeadingZeros:   -1,
		EnableFilter:   [4]bool{true, true, true, true},
	}
}

// Encode converts pcm to a BRR sample. loopSampleIndex is the index of the
// first looped input sample, or negative for a one shot sample.
func (encoder *Encoder) Encode(pcm []int16, loopSampleIndex int) (*brr.Sample, error) {
	if len(pcm) == 0 {
		return nil, brr.InvalidArgumentError("empty PCM input")
	}

	if encoder.ResampleFactor <= 0 {
		return nil, brr.InvalidArgumentError(fmt.Sprintf("resample factor %g must be positive", encoder.ResampleFactor))
	}

	var input = pcm

	if encoder.Truncate >= 1 && encoder.Truncate <= len(pcm) {
		input = pcm[:encoder.Truncate]
	}

	var loops = loopSampleIndex >= 0 && loopSampleIndex < len(input)

	targetLength, loopSize := encoder.resampleSize(len(input), loopSampleIndex, loops)

	kernel := encoder.Resampler
	if kernel == nil {
		kernel = resample.Linear
	}

	samples, err := resample.Apply(kernel, input, len(input), targetLength)

	if err != nil {
		return nil, err
	}

	for _, filter := range encoder.Filters {
		filter(samples)
	}

	samples = encoder.normalizeLeadingZeros(samples)

	var loopBlock = brr.NO_LOOP

	if loops {
		loopBlock = (len(samples) - loopSize) / brr.PCM_BLOCK_SIZE
	}

	var options = brr.EncodeOptions{
		EnableFilter:       encoder.EnableFilter,
		ForceFilter0OnLoop: encoder.ForceFilter0OnLoop,
	}

	return brr.Encode(samples, loopBlock, &options)
}

// resampleSize picks the output length. For looping input the ratio is
// nudged so the loop region lands on a whole number of PCM blocks.
func (encoder *Encoder) resampleSize(inputLength int, loopSampleIndex int, loops bool) (int, int) {
	var factor = encoder.ResampleFactor

	if !loops {
		var target = int(math.Round(float64(inputLength) / factor))

		if target < 1 {
			target = 1
		}

		return target, 0
	}

	var oldLoopSize = float64(inputLength-loopSampleIndex) / factor
	var newLoopSize = int(math.Ceil(oldLoopSize/brr.PCM_BLOCK_SIZE)) * brr.PCM_BLOCK_SIZE

	var target = int(math.Round(float64(inputLength) / factor * float64(newLoopSize) / oldLoopSize))

	if target < newLoopSize {
		target = newLoopSize
	}

	return target, newLoopSize
}

// normalizeLeadingZeros aligns the output to whole PCM blocks, optionally
// forcing a minimum run of leading zero samples first.
func (encoder *Encoder) normalizeLeadingZeros(samples []int16) []int16 {
	if encoder.LeadingZeros < 0 {
		var pad = (brr.PCM_BLOCK_SIZE - len(samples)%brr.PCM_BLOCK_SIZE) % brr.PCM_BLOCK_SIZE
		return prependZeros(samples, pad)
	}

	var trimmed = 0
	for trimmed < len(samples) && samples[trimmed] == 0 {
		trimmed++
	}
	samples = samples[trimmed:]

	var want = encoder.LeadingZeros
	if want > brr.MAX_LEADING_ZEROS {
		want = brr.MAX_LEADING_ZEROS
	}

	var zeros = (brr.PCM_BLOCK_SIZE - len(samples)%brr.PCM_BLOCK_SIZE) % brr.PCM_BLOCK_SIZE

	// Anything past alignment grows in whole blocks.
	if zeros < want {
		zeros += (want - zeros + brr.PCM_BLOCK_SIZE - 1) / brr.PCM_BLOCK_SIZE * brr.PCM_BLOCK_SIZE
	}

	if len(samples)+zeros == 0 {
		zeros = brr.PCM_BLOCK_SIZE
	}

	return prependZeros(samples, zeros)
}

func prependZeros(samples []int16, count int) []int16 {
	if count == 0 {
		return samples
	}

	var result = make([]int16, count+len(samples))
	copy(result[count:], samples)
	return result
}
