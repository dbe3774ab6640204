package brr

// DataIssue is a bitmask of structural problems found by validators.
// Validators never fail; producers refuse data whose issue set carries the
// UNRESOLVABLE bit. Everything else is advisory.
type DataIssue uint32

const (
	BAD_ALIGNMENT DataIssue = 1 << iota
	DATA_TOO_SMALL
	DATA_TOO_LARGE
	MISSING_END_FLAG
	EARLY_END_FLAGS
	MISSING_LOOP_FLAG
	MISSING_LOOP_POINT
	MISALIGNED_LOOP_POINT
	OUT_OF_RANGE_LOOP_POINT
	LARGE_RANGE
	BLOCK0_FILTER
	BLOCK0_SAMPLES
	WRONG_BLOCK_COUNT
	UNDEFINED_BEHAVIOR
	UNRESOLVABLE
)

func (issues DataIssue) Has(issue DataIssue) bool {
	return issues&issue != 0
}

// ValidateData inspects a raw BRR byte stream. loopOffset is the loop point
// in bytes (NO_LOOP if absent); loops states whether the stream is meant to
// loop.
func ValidateData(data []byte, loopOffset int, loops bool) DataIssue {
	var issues DataIssue

	if len(data)%BRR_BLOCK_SIZE != 0 {
		issues |= BAD_ALIGNMENT | UNRESOLVABLE
	}

	if len(data) < BRR_BLOCK_SIZE {
		issues |= DATA_TOO_SMALL | UNRESOLVABLE
	}

	if len(data) > MAX_BLOCKS*BRR_BLOCK_SIZE {
		issues |= DATA_TOO_LARGE | UNRESOLVABLE
	}

	if issues != 0 {
		return issues
	}

	var blockCount = len(data) / BRR_BLOCK_SIZE

	for i := 0; i < blockCount; i++ {
		var header = data[i*BRR_BLOCK_SIZE]

		if header>>rangeShift > MAX_RANGE {
			issues |= LARGE_RANGE | UNDEFINED_BEHAVIOR
		}

		if i < blockCount-1 && header&END_FLAG != 0 {
			issues |= EARLY_END_FLAGS
		}
	}

	var finalHeader = data[(blockCount-1)*BRR_BLOCK_SIZE]

	if finalHeader&END_FLAG == 0 {
		issues |= MISSING_END_FLAG
	}

	if data[0]>>filterShift&filterMask != 0 {
		issues |= BLOCK0_FILTER
	}

	// The DSP decodes the first block against zeroed history; a nonzero
	// residual in the first three slots plays back as garbage.
	var block0 = Block{data[0:BRR_BLOCK_SIZE]}
	if block0.sampleAt(0) != 0 || block0.sampleAt(1) != 0 || block0.sampleAt(2) != 0 {
		issues |= BLOCK0_SAMPLES
	}

	if loops {
		if finalHeader&LOOP_FLAG == 0 {
			issues |= MISSING_LOOP_FLAG
		}

		if loopOffset < 0 {
			issues |= MISSING_LOOP_POINT | UNRESOLVABLE
		} else {
			if loopOffset%BRR_BLOCK_SIZE != 0 {
				issues |= MISALIGNED_LOOP_POINT | UNRESOLVABLE
			}

			if loopOffset >= len(data) {
				issues |= OUT_OF_RANGE_LOOP_POINT | UNRESOLVABLE
			}
		}
	}

	return issues
}
