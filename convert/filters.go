package convert

import (
	"math"

	"github.com/brrsuite/wav2brr/brr"
)

// AmplitudeFilter scales the waveform by factor, saturating at 16 bits.
func AmplitudeFilter(factor float64) PreFilter {
	return func(samples []int16) {
		for i, s := range samples {
			samples[i] = int16(brr.Clamp(int32(math.Round(float64(s) * factor))))
		}
	}
}

// TrebleFilter lifts high frequencies ahead of encoding to counter the
// Gaussian interpolator's rolloff on playback. amount 0 is a no-op; 1 is a
// strong boost.
func TrebleFilter(amount float64) PreFilter {
	return func(samples []int16) {
		if len(samples) < 3 || amount == 0 {
			return
		}

		var previous = float64(samples[0])

		for i := 1; i < len(samples)-1; i++ {
			var center = float64(samples[i])
			var boosted = center + amount*(center-(previous+float64(samples[i+1]))/2)

			previous = center
			samples[i] = int16(brr.Clamp(int32(math.Round(boosted))))
		}
	}
}
