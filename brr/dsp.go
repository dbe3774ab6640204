package brr

import "fmt"

// The four prediction filters of the DSP decode path. All inputs are the
// two most recent decoded samples; all shifts are arithmetic.
func filter0(p1 int32, p2 int32) int32 {
	return 0
}

func filter1(p1 int32, p2 int32) int32 {
	return p1 - (p1 >> 4)
}

func filter2(p1 int32, p2 int32) int32 {
	return 2*p1 + ((-3*p1)>>5) - p2 + (p2 >> 4)
}

func filter3(p1 int32, p2 int32) int32 {
	return 2*p1 + ((-13*p1)>>6) - p2 + ((3*p2)>>4)
}

var predictionFilters = [4]func(int32, int32) int32{filter0, filter1, filter2, filter3}

// Filter applies prediction filter f to the sample history (p1, p2).
func Filter(f int, p1 int32, p2 int32) (int32, error) {
	if f < 0 || f > 3 {
		return 0, InvalidArgumentError(fmt.Sprintf("prediction filter %d out of range [0, 3]", f))
	}

	return predictionFilters[f](p1, p2), nil
}

// Clamp saturates v to a signed 16 bit value.
func Clamp(v int32) int32 {
	if v > 0x7FFF {
		return 0x7FFF
	}

	if v < -0x8000 {
		return -0x8000
	}

	return v
}

// Clip reproduces the DSP's 15 bit overflow glitches rather than saturating.
func Clip(v int32) int32 {
	if v > 0x7FFF {
		return (v + 0x7FFF) & 0x7FFF
	}

	if v < -0x7FFF {
		return 0
	}

	if v > 0x3FFF {
		return v - 0x8000
	}

	if v < -0x4000 {
		return v + 0x8000
	}

	return v
}

// ApplyRange scales a residual by the block's range. Ranges above MAX_RANGE
// are undefined on hardware; only the sign of the residual survives.
func ApplyRange(s int32, shiftRange int) int32 {
	if shiftRange >= 0 && shiftRange <= MAX_RANGE {
		return (s << shiftRange) >> 1
	}

	if s < 0 {
		return -0x800
	}

	return 0
}
