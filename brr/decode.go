package brr

import "math"

const maxLoopIterations = 777
const maxDecodeSeconds = 10.0

// Power-up history seeds. The hardware register state is undefined at
// reset; these literals are an emulation hint, not a promise.
const (
	seedP1 = 0xBEBE
	seedP2 = 5656
	seedP3 = 0x4040
	seedP4 = -0x7171
)

type decoderState struct {
	sample *Sample
	pos    int
	p1     int32
	p2     int32
	p3     int32
	p4     int32
}

// Decode plays the sample back through the DSP's pitch accumulator and
// 4 tap Gaussian interpolator, producing PCM at 32000 Hz. Pitches outside
// [1, 0x3FFF] fall back to DEFAULT_VX_PITCH. Looping samples repeat until
// the output covers minSeconds (capped at 10 s), at least once and at most
// 777 times.
func Decode(sample *Sample, pitch int, minSeconds float64) []int16 {
	if pitch < 1 || pitch > 0x3FFF {
		pitch = DEFAULT_VX_PITCH
	}

	if minSeconds > maxDecodeSeconds {
		minSeconds = maxDecodeSeconds
	}

	var totalBlocks = sample.BlockCount()

	if sample.Loops() {
		var loopSize = sample.BlockCount() - sample.loopBlock
		var neededSamples = int(math.Ceil(minSeconds * DSP_FREQUENCY))

		var iterations = 1
		for (sample.BlockCount()+iterations*loopSize)*PCM_BLOCK_SIZE < neededSamples && iterations < maxLoopIterations {
			iterations++
		}

		totalBlocks = sample.BlockCount() + iterations*loopSize
	}

	var output = make([]int16, totalBlocks*PCM_BLOCK_SIZE)

	var state = decoderState{
		sample: sample,
		p1:     seedP1,
		p2:     seedP2,
		p3:     seedP3,
		p4:     seedP4,
	}

	// Prime the interpolator before producing output.
	for i := 0; i < 4; i++ {
		state.consume()
	}

	var accumulator = 0

	for i := range output {
		var x = (accumulator >> 4) & 0xFF

		var mixed = (int32(GaussTable[0xFF-x])*state.p4 +
			int32(GaussTable[0x1FF-x])*state.p3 +
			int32(GaussTable[0x100+x])*state.p2 +
			int32(GaussTable[x])*state.p1) >> 10

		output[i] = int16(Clip(mixed >> 1))

		accumulator += pitch

		for accumulator >= 0x1000 {
			state.consume()
			accumulator -= 0x1000
		}
	}

	return output
}

// consume decodes one source sample into the history registers and advances
// the decode position, wrapping at the end of a looping sample. Past the
// end of a non looping sample the history holds its last values.
func (state *decoderState) consume() {
	if state.pos >= state.sample.SampleCount() {
		return
	}

	var block = state.sample.block(state.pos / PCM_BLOCK_SIZE)
	var residual = block.sampleAt(state.pos % PCM_BLOCK_SIZE)

	var prediction = predictionFilters[block.Filter()](state.p1, state.p2)
	var decoded = Clip(Clamp(ApplyRange(residual, block.Range()) + prediction))

	state.p4 = state.p3
	state.p3 = state.p2
	state.p2 = state.p1
	state.p1 = decoded

	state.pos++

	if state.pos >= state.sample.SampleCount() && state.sample.Loops() {
		state.pos = state.sample.loopBlock * PCM_BLOCK_SIZE
	}
}
