package brr

import (
	"encoding/binary"
	"fmt"
	"io"
)

const DSP_FREQUENCY = 32000
const DEFAULT_VX_PITCH = 0x1000
const MAX_RANGE = 12
const MAX_LEADING_ZEROS = 100
const NO_LOOP = -1

// MAX_BLOCKS leaves headroom within the 64 KiB APU memory.
const MAX_BLOCKS = 7280

// A Sample owns the byte buffer of an encoded BRR stream, always a whole
// number of blocks. Blocks are handed out as borrowed views into that
// buffer.
type Sample struct {
	data      []byte
	loopBlock int
}

// NewSample creates a zero filled sample of blockCount blocks.
func NewSample(blockCount int) (*Sample, error) {
	if blockCount <= 0 || blockCount > MAX_BLOCKS {
		return nil, InvalidArgumentError(fmt.Sprintf("block count %d out of range [1, %d]", blockCount, MAX_BLOCKS))
	}

	return &Sample{
		data:      make([]byte, blockCount*BRR_BLOCK_SIZE),
		loopBlock: NO_LOOP,
	}, nil
}

// SampleFromBytes copies an existing BRR byte stream into a new sample.
func SampleFromBytes(data []byte) (*Sample, error) {
	if len(data) == 0 || len(data)%BRR_BLOCK_SIZE != 0 {
		return nil, BadFormatError(fmt.Sprintf("BRR data length %d is not a positive multiple of %d", len(data), BRR_BLOCK_SIZE))
	}

	if len(data) > MAX_BLOCKS*BRR_BLOCK_SIZE {
		return nil, BadFormatError(fmt.Sprintf("BRR data length %d exceeds %d blocks", len(data), MAX_BLOCKS))
	}

	var result = Sample{
		data:      make([]byte, len(data)),
		loopBlock: NO_LOOP,
	}
	copy(result.data, data)

	return &result, nil
}

func (sample *Sample) BlockCount() int {
	return len(sample.data) / BRR_BLOCK_SIZE
}

func (sample *Sample) DataLength() int {
	return len(sample.data)
}

func (sample *Sample) SampleCount() int {
	return sample.BlockCount() * PCM_BLOCK_SIZE
}

// Block returns a borrowed read/write view of block i.
func (sample *Sample) Block(i int) (Block, error) {
	if i < 0 || i >= sample.BlockCount() {
		return Block{}, InvalidArgumentError(fmt.Sprintf("block index %d out of range [0, %d)", i, sample.BlockCount()))
	}

	return sample.block(i), nil
}

func (sample *Sample) block(i int) Block {
	return Block{sample.data[i*BRR_BLOCK_SIZE : (i+1)*BRR_BLOCK_SIZE]}
}

func (sample *Sample) LoopBlock() int {
	return sample.loopBlock
}

// SetLoopBlock records the block the DSP jumps back to. Out of range values
// normalize to NO_LOOP.
func (sample *Sample) SetLoopBlock(i int) {
	if i < 0 || i >= sample.BlockCount() {
		sample.loopBlock = NO_LOOP
	} else {
		sample.loopBlock = i
	}
}

func (sample *Sample) Loops() bool {
	return sample.loopBlock != NO_LOOP
}

// LoopOffset returns the loop point as a byte offset, or NO_LOOP.
func (sample *Sample) LoopOffset() int {
	if sample.loopBlock == NO_LOOP {
		return NO_LOOP
	}

	return sample.loopBlock * BRR_BLOCK_SIZE
}

// Raw returns a copy of the sample's byte stream.
func (sample *Sample) Raw() []byte {
	var result = make([]byte, len(sample.data))
	copy(result, sample.data)
	return result
}

// CorrectEndFlags clears end and loop flags on every non final block, sets
// the end flag on the final block, and sets its loop flag iff the sample
// loops. Idempotent.
func (sample *Sample) CorrectEndFlags() {
	var last = sample.BlockCount() - 1

	for i := 0; i < last; i++ {
		var block = sample.block(i)
		block.SetEndFlag(false)
		block.SetLoopFlag(false)
	}

	var final = sample.block(last)
	final.SetEndFlag(true)
	final.SetLoopFlag(sample.loopBlock >= 0)
}

// Validate reports every structural issue in the sample. It never fails;
// callers that need a hard answer check the UNRESOLVABLE bit.
func (sample *Sample) Validate() DataIssue {
	return ValidateData(sample.data, sample.LoopOffset(), sample.Loops())
}

// SerializeRaw writes the exact byte stream of the sample.
func (sample *Sample) SerializeRaw(writer io.Writer) error {
	_, err := writer.Write(sample.data)
	return err
}

// SerializeLoopHeadered writes a 2 byte little endian loop byte offset
// followed by the raw stream. Non looping samples write the sample count as
// the sentinel offset.
func (sample *Sample) SerializeLoopHeadered(writer io.Writer) error {
	var loopOffset = sample.SampleCount()

	if sample.loopBlock >= 0 {
		loopOffset = sample.loopBlock * BRR_BLOCK_SIZE
	}

	err := binary.Write(writer, binary.LittleEndian, uint16(loopOffset))

	if err != nil {
		return err
	}

	return sample.SerializeRaw(writer)
}

// ParseLoopHeadered reads the stream written by SerializeLoopHeadered. A
// loop offset that is not a block aligned offset into the data is treated
// as the non looping sentinel.
func ParseLoopHeadered(data []byte) (*Sample, error) {
	if len(data) < 2 {
		return nil, BadFormatError("loop headered stream too short")
	}

	var loopOffset = int(binary.LittleEndian.Uint16(data))

	sample, err := SampleFromBytes(data[2:])

	if err != nil {
		return nil, err
	}

	if loopOffset < sample.DataLength() && loopOffset%BRR_BLOCK_SIZE == 0 {
		sample.SetLoopBlock(loopOffset / BRR_BLOCK_SIZE)
	}

	return sample, nil
}
