// Package resample provides the interpolation kernels used to bring PCM
// input to the encoder's target length. Kernels are pure functions; Apply
// handles validation and the equal-length fast copy so kernels never see a
// degenerate request.
package resample

import (
	"math"
	"sort"

	"github.com/brrsuite/wav2brr/brr"
)

// A Resampler maps inLength input samples onto outLength output samples.
// Both lengths are positive and inLength never exceeds len(input); Apply
// guarantees it.
type Resampler func(input []int16, inLength int, outLength int) []int16

var kernels = map[string]Resampler{
	"nearest": Nearest,
	"linear":  Linear,
	"sine":    Sine,
	"cubic":   Cubic,
	"sinc":    BandlimitedSinc,
}

// ByName looks up a registered kernel.
func ByName(name string) (Resampler, error) {
	kernel, ok := kernels[name]

	if !ok {
		return nil, brr.InvalidArgumentError("unknown resampler " + name)
	}

	return kernel, nil
}

// Names lists the registered kernels, sorted.
func Names() []string {
	var result []string = nil

	for name := range kernels {
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}

// Apply validates the request and runs the kernel, copying straight through
// when no rate change is asked for.
func Apply(kernel Resampler, input []int16, inLength int, outLength int) ([]int16, error) {
	if kernel == nil {
		return nil, brr.InvalidArgumentError("nil resampler")
	}

	if inLength <= 0 || outLength <= 0 || inLength > len(input) {
		return nil, brr.InvalidArgumentError("bad resample lengths")
	}

	if inLength == outLength {
		var result = make([]int16, outLength)
		copy(result, input[:inLength])
		return result, nil
	}

	return kernel(input, inLength, outLength), nil
}

func Nearest(input []int16, inLength int, outLength int) []int16 {
	var result = make([]int16, outLength)

	for i := range result {
		result[i] = input[i*inLength/outLength]
	}

	return result
}

func Linear(input []int16, inLength int, outLength int) []int16 {
	var result = make([]int16, outLength)
	var scale = float64(inLength) / float64(outLength)

	for i := range result {
		var at = float64(i) * scale
		var a = int(at)

		if a+1 >= inLength {
			result[i] = input[inLength-1]
			continue
		}

		var t = at - float64(a)
		result[i] = int16(float64(input[a])*(1-t) + float64(input[a+1])*t)
	}

	return result
}

func Sine(input []int16, inLength int, outLength int) []int16 {
	var result = make([]int16, outLength)
	var scale = float64(inLength) / float64(outLength)

	for i := range result {
		var at = float64(i) * scale
		var a = int(at)

		if a+1 >= inLength {
			result[i] = input[inLength-1]
			continue
		}

		var c = (1 - math.Cos(math.Pi*(at-float64(a)))) / 2
		result[i] = clampSample(float64(input[a])*(1-c) + float64(input[a+1])*c)
	}

	return result
}

func Cubic(input []int16, inLength int, outLength int) []int16 {
	var result = make([]int16, outLength)
	var scale = float64(inLength) / float64(outLength)

	var sampleAt = func(index int) float64 {
		if index < 0 {
			index = 0
		}
		if index >= inLength {
			index = inLength - 1
		}
		return float64(input[index])
	}

	for i := range result {
		var at = float64(i) * scale
		var a = int(at)
		var t = at - float64(a)

		var y0 = sampleAt(a - 1)
		var y1 = sampleAt(a)
		var y2 = sampleAt(a + 1)
		var y3 = sampleAt(a + 2)

		var ca = y3 - y2 - y0 + y1
		var cb = y0 - y1 - ca
		var cc = y2 - y0

		var value = ((ca*t+cb)*t+cc)*t + y1

		result[i] = clampSample(value)
	}

	return result
}

const sincTaps = 16

// BandlimitedSinc reconstructs with a 31 point sinc sum. When downsampling
// it first runs a mirrored 16 tap low pass sized to the decimation ratio so
// the sum does not alias.
func BandlimitedSinc(input []int16, inLength int, outLength int) []int16 {
	var ratio = float64(inLength) / float64(outLength)
	var source = input[:inLength]

	if ratio > 1 {
		source = lowpass(source, ratio)
	}

	var result = make([]int16, outLength)

	for i := range result {
		var at = float64(i) * ratio
		var center = int(at)

		var value = 0.0

		for j := center - (sincTaps - 1); j <= center+(sincTaps-1); j++ {
			var index = j

			if index < 0 {
				index = 0
			}
			if index >= inLength {
				index = inLength - 1
			}

			value += float64(source[index]) * sinc(at-float64(j))
		}

		result[i] = clampSample(value)
	}

	return result
}

// lowpass applies the antialiasing FIR: coefficients sinc(k/ratio)/ratio
// for k in [0, 15], mirrored, with edges clamped to the endpoint samples.
func lowpass(input []int16, ratio float64) []int16 {
	var coefficients [sincTaps]float64

	for k := 0; k < sincTaps; k++ {
		coefficients[k] = sinc(float64(k)/ratio) / ratio
	}

	var result = make([]int16, len(input))

	for i := range input {
		var value = coefficients[0] * float64(input[i])

		for k := 1; k < sincTaps; k++ {
			var left = i - k
			var right = i + k

			if left < 0 {
				left = 0
			}
			if right >= len(input) {
				right = len(input) - 1
			}

			value += coefficients[k] * (float64(input[left]) + float64(input[right]))
		}

		result[i] = clampSample(value)
	}

	return result
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	return math.Sin(math.Pi*x) / (math.Pi * x)
}

func clampSample(value float64) int16 {
	var rounded = math.Round(value)

	if rounded > 32767 {
		return 32767
	}

	if rounded < -32768 {
		return -32768
	}

	return int16(rounded)
}
