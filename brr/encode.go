package brr

import "fmt"

// EncodeOptions narrows the brute force search. The zero value enables no
// filter, which leaves filter 0 as the only candidate; use
// DefaultEncodeOptions for the usual full search.
type EncodeOptions struct {
	// EnableFilter gates which prediction filters the search may choose
	// for blocks past the first. Block 0 always uses filter 0.
	EnableFilter [4]bool

	// ForceFilter0OnLoop pins filter 0 at the loop block so playback can
	// re-enter it from any history.
	ForceFilter0OnLoop bool
}

func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		EnableFilter: [4]bool{true, true, true, true},
	}
}

// blockState tracks one pass over a 16 sample block. l1 and l2 replay what
// the decoder will hold, at 16 bit scale.
type blockState struct {
	l1           int32
	l2           int32
	squaredError float64
}

// encoderState is the cross block search state: the persistent decoded
// history plus the snapshot taken entering the loop block.
type encoderState struct {
	p1           int32
	p2           int32
	p1Loop       int32
	p2Loop       int32
	filterAtLoop int
}

// Encode runs the exhaustive (filter, range) search over aligned PCM input
// and returns the encoded sample. The input length must be a positive
// multiple of PCM_BLOCK_SIZE; loopBlock is a block index or NO_LOOP.
func Encode(pcm []int16, loopBlock int, options *EncodeOptions) (*Sample, error) {
	if len(pcm) == 0 || len(pcm)%PCM_BLOCK_SIZE != 0 {
		return nil, InvalidArgumentError(fmt.Sprintf("PCM length %d is not a positive multiple of %d", len(pcm), PCM_BLOCK_SIZE))
	}

	var blockCount = len(pcm) / PCM_BLOCK_SIZE

	if blockCount > MAX_BLOCKS {
		return nil, InvalidArgumentError(fmt.Sprintf("input of %d blocks exceeds the %d block limit", blockCount, MAX_BLOCKS))
	}

	var defaulted = DefaultEncodeOptions()

	if options == nil {
		options = &defaulted
	}

	sample, err := NewSample(blockCount)

	if err != nil {
		return nil, err
	}

	if loopBlock < 0 || loopBlock >= blockCount {
		loopBlock = NO_LOOP
	}
	sample.loopBlock = loopBlock

	var state encoderState

	for n := 0; n < blockCount; n++ {
		if n == loopBlock {
			state.p1Loop = state.p1
			state.p2Loop = state.p2
		}

		var input = pcm[n*PCM_BLOCK_SIZE : (n+1)*PCM_BLOCK_SIZE]
		var block = sample.block(n)
		var isFinal = n == blockCount-1
		var closesLoop = isFinal && loopBlock != NO_LOOP

		if state.p1 == 0 && state.p2 == 0 && isSilent(input) {
			// The canonical silent block: zero header, zero data.
			writeBlockHeader(block, 0, 0, isFinal, loopBlock != NO_LOOP)
			if n == loopBlock {
				state.filterAtLoop = 0
			}
			continue
		}

		var filters = candidateFilters(options, n, loopBlock)

		var bestFilter = filters[0]
		var bestRange = 1
		var bestError = -1.0

		for _, filter := range filters {
			for shiftRange := 1; shiftRange <= MAX_RANGE; shiftRange++ {
				var trial = runBlock(input, filter, shiftRange, &state, Block{}, false)
				var blockError = finishBlockError(trial, filter, &state, closesLoop)

				if bestError < 0 || blockError < bestError {
					bestError = blockError
					bestFilter = filter
					bestRange = shiftRange
				}
			}
		}

		var written = runBlock(input, bestFilter, bestRange, &state, block, true)
		writeBlockHeader(block, bestRange, bestFilter, isFinal, loopBlock != NO_LOOP)

		state.p1 = written.l1
		state.p2 = written.l2

		if n == loopBlock {
			state.filterAtLoop = bestFilter
		}
	}

	return sample, nil
}

func isSilent(input []int16) bool {
	for _, s := range input {
		if s != 0 {
			return false
		}
	}

	return true
}

func candidateFilters(options *EncodeOptions, blockIndex int, loopBlock int) []int {
	if blockIndex == 0 {
		return []int{0}
	}

	if options.ForceFilter0OnLoop && blockIndex == loopBlock {
		return []int{0}
	}

	var result []int = nil

	for filter := 0; filter < 4; filter++ {
		if options.EnableFilter[filter] {
			result = append(result, filter)
		}
	}

	if result == nil {
		result = []int{0}
	}

	return result
}

func writeBlockHeader(block Block, shiftRange int, filter int, isFinal bool, loops bool) {
	var header = uint8(shiftRange)<<rangeShift | uint8(filter)<<filterShift

	if isFinal {
		header |= END_FLAG

		if loops {
			header |= LOOP_FLAG
		}
	}

	block.SetHeader(header)
}

// runBlock replays the 16 sample encode for one (filter, range) candidate.
// In write mode the residuals land in the block's data bytes; trial mode
// only accumulates squared error.
func runBlock(input []int16, filter int, shiftRange int, state *encoderState, block Block, write bool) blockState {
	var st = blockState{l1: state.p1, l2: state.p2}
	var step = int32(1<<(shiftRange+2)) + int32((1<<shiftRange)>>2)

	for i := 0; i < PCM_BLOCK_SIZE; i++ {
		var s = int32(input[i])
		var linear = predictionFilters[filter](st.l1, st.l2) >> 1

		var sampleError = (s >> 1) - linear

		// A wrap case inherited from BRRtools; preserved exactly.
		if sampleError > 16384 && sampleError < 32768 {
			sampleError = (sampleError >> 9) & 0x07FF8000
		} else if sampleError < -16384 && sampleError > -32768 {
			sampleError = (sampleError >> 9) & 0x07FF8000
		}

		var dp = sampleError + step

		var residual int32 = -8

		if dp > 0 {
			residual = (dp << 1) >> shiftRange

			if residual > 15 {
				residual = 15
			}

			residual -= 8
		}

		if write {
			block.setSampleAt(i, residual)
		}

		var decoded = linear + ((residual << shiftRange) >> 1)

		if int32(int16(decoded)) != decoded {
			decoded = int32(int16(0x7FFF - (decoded >> 24)))
		}

		decoded <<= 1

		st.l2 = st.l1
		st.l1 = decoded

		var diff = float64(s - st.l1)
		st.squaredError += diff * diff
	}

	return st
}

// finishBlockError converts the accumulated squared error into the per
// sample mean the candidates are ranked by. The final block of a looping
// sample also pays for the history mismatch the first post-loop prediction
// will see.
func finishBlockError(st blockState, filter int, state *encoderState, closesLoop bool) float64 {
	var blockError = st.squaredError

	if closesLoop {
		switch filter {
		case 1:
			var d1 = float64(st.l1 - state.p1Loop)
			blockError += d1 * d1
			return blockError / 17

		case 2, 3:
			var d1 = float64(st.l1 - state.p1Loop)
			var d2 = float64(st.l2 - state.p2Loop)
			blockError += d1*d1 + d2*d2
			return blockError / 18
		}
	}

	return blockError / 16
}
