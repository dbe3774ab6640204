// Package brs implements the BRR Suite Sample container: a 64 byte header
// carrying a checksum and instrument metadata, immediately followed by the
// raw BRR stream.
package brs

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/brrsuite/wav2brr/brr"
)

const EXTENSION = ".brs"
const HEADER_SIZE = 64
const NAME_LENGTH = 24

const fileSignature = "BRRS"
const metaSignature = "META"
const dataSignature = "DATA"

// Header field offsets.
const (
	checksumOffset     = 4
	complementOffset   = 6
	metaOffset         = 8
	nameOffset         = 12
	vxPitchOffset      = 36
	frequencyOffset    = 40
	reservedOffset     = 44
	dataOffset         = 51
	loopBehaviorOffset = 55
	loopBlockOffset    = 56
	loopPointOffset    = 58
	blockCountOffset   = 60
	lengthOffset       = 62
)

// LoopBehavior classifies how a sample's loop point should be read.
// EXTRINSIC and MISALIGNED are advisory: the loop leaves this sample's
// data or sits off a block boundary.
type LoopBehavior uint8

const (
	NON_LOOPING LoopBehavior = iota
	LOOPING
	EXTRINSIC
	MISALIGNED
)

// A SuiteSample wraps a BRR sample with the suite file's metadata. The
// instrument name is kept sanitized and padded to exactly NAME_LENGTH.
type SuiteSample struct {
	instrumentName string

	// VxPitch is the DSP pitch register value for unity playback of this
	// instrument; 0 means unknown.
	VxPitch uint16

	// EncodingFrequency is the sample rate the PCM source was encoded at.
	EncodingFrequency int32

	LoopBehavior LoopBehavior

	// LoopPoint is the loop byte offset; meaningful for LOOPING, EXTRINSIC
	// and MISALIGNED samples.
	LoopPoint uint16

	Sample *brr.Sample
}

// New wraps sample with default metadata, deriving the loop behavior from
// the sample's own loop block.
func New(sample *brr.Sample, instrumentName string) (*SuiteSample, error) {
	var result = SuiteSample{
		VxPitch:           brr.DEFAULT_VX_PITCH,
		EncodingFrequency: brr.DSP_FREQUENCY,
		Sample:            sample,
	}

	err := result.SetInstrumentName(instrumentName)

	if err != nil {
		return nil, err
	}

	if sample.Loops() {
		result.SetLoopPoint(sample.LoopOffset())
	} else {
		result.SetLoopPoint(-1)
	}

	return &result, nil
}

// SanitizeName reduces a string to printable Latin-1: control characters
// and soft hyphens are stripped, non breaking spaces become spaces, and
// anything outside Latin-1 becomes '?'.
func SanitizeName(name string) string {
	var builder strings.Builder

	for _, r := range name {
		switch {
		case r < 0x20 || (r >= 0x7F && r <= 0x9F) || r == 0xAD:
			// stripped
		case r == 0xA0:
			builder.WriteByte(' ')
		case r > 0xFF:
			builder.WriteByte('?')
		default:
			builder.WriteByte(byte(r))
		}
	}

	return builder.String()
}

// SetInstrumentName sanitizes and space pads the name to NAME_LENGTH.
// Names that are still too long after sanitizing are rejected.
func (suite *SuiteSample) SetInstrumentName(name string) error {
	var sanitized = SanitizeName(name)

	if len(sanitized) > NAME_LENGTH {
		return brr.InvalidArgumentError(fmt.Sprintf("instrument name longer than %d characters", NAME_LENGTH))
	}

	suite.instrumentName = sanitized + strings.Repeat(" ", NAME_LENGTH-len(sanitized))
	return nil
}

// InstrumentName returns the padded 24 character name.
func (suite *SuiteSample) InstrumentName() string {
	return suite.instrumentName
}

// SetVxPitch stores the pitch register value; out of range values mean the
// pitch is unknown and store as 0.
func (suite *SuiteSample) SetVxPitch(pitch int) {
	if pitch < 0 || pitch > 0x3FFF {
		suite.VxPitch = 0
	} else {
		suite.VxPitch = uint16(pitch)
	}
}

// SetLoopPoint records the loop byte offset and derives the loop behavior
// from where it lands: negative clears the loop, past the data is
// extrinsic, off a block boundary is misaligned.
func (suite *SuiteSample) SetLoopPoint(point int) {
	switch {
	case point < 0:
		suite.LoopBehavior = NON_LOOPING
		suite.LoopPoint = 0

	case point >= suite.Sample.DataLength():
		suite.LoopBehavior = EXTRINSIC
		suite.LoopPoint = uint16(point)

	case point%brr.BRR_BLOCK_SIZE != 0:
		suite.LoopBehavior = MISALIGNED
		suite.LoopPoint = uint16(point)

	default:
		suite.LoopBehavior = LOOPING
		suite.LoopPoint = uint16(point)
		suite.Sample.SetLoopBlock(point / brr.BRR_BLOCK_SIZE)
	}
}

// Checksum runs the suite checksum over a raw BRR stream.
func Checksum(data []byte) uint16 {
	var sum uint32 = 0

	for offset := 0; offset+brr.BRR_BLOCK_SIZE <= len(data); offset += brr.BRR_BLOCK_SIZE {
		var acc uint32 = 0

		for j := 1; j <= 8; j++ {
			acc += uint32(data[offset+j]) << (j - 1)
		}

		acc ^= uint32(data[offset]) << 4
		sum += acc
	}

	return uint16(sum)
}

// Serialize writes the 64 byte header and the sample data. It refuses
// samples whose issue set is unresolvable.
func (suite *SuiteSample) Serialize(writer io.Writer) error {
	if suite.EncodingFrequency <= 0 {
		return brr.InvalidArgumentError(fmt.Sprintf("encoding frequency %d must be positive", suite.EncodingFrequency))
	}

	var loops = suite.LoopBehavior == LOOPING
	var data = suite.Sample.Raw()

	issues := brr.ValidateData(data, int(suite.LoopPoint), loops)

	if issues.Has(brr.UNRESOLVABLE) {
		return brr.UnresolvableDataError{Issues: issues}
	}
	var header [HEADER_SIZE]byte

	copy(header[0:], fileSignature)
	copy(header[metaOffset:], metaSignature)
	copy(header[nameOffset:], suite.instrumentName)

	binary.LittleEndian.PutUint16(header[vxPitchOffset:], suite.VxPitch)
	binary.LittleEndian.PutUint32(header[frequencyOffset:], uint32(suite.EncodingFrequency))

	copy(header[dataOffset:], dataSignature)
	header[loopBehaviorOffset] = byte(suite.LoopBehavior)

	var loopBlock = 0
	if loops {
		loopBlock = int(suite.LoopPoint) / brr.BRR_BLOCK_SIZE
	}

	binary.LittleEndian.PutUint16(header[loopBlockOffset:], uint16(loopBlock))
	binary.LittleEndian.PutUint16(header[loopPointOffset:], suite.LoopPoint)
	binary.LittleEndian.PutUint16(header[blockCountOffset:], uint16(suite.Sample.BlockCount()))
	binary.LittleEndian.PutUint16(header[lengthOffset:], uint16(len(data)))

	var checksum = Checksum(data)
	binary.LittleEndian.PutUint16(header[checksumOffset:], checksum)
	binary.LittleEndian.PutUint16(header[complementOffset:], checksum^0xFFFF)

	_, err := writer.Write(header[:])

	if err != nil {
		return err
	}

	_, err = writer.Write(data)
	return err
}

// Parse validates and reads a suite file.
func Parse(data []byte) (*SuiteSample, error) {
	if len(data) < HEADER_SIZE+brr.BRR_BLOCK_SIZE {
		return nil, brr.BadFormatError("suite file too short")
	}

	if string(data[0:4]) != fileSignature {
		return nil, brr.BadFormatError("missing BRRS signature")
	}

	if string(data[metaOffset:metaOffset+4]) != metaSignature {
		return nil, brr.BadFormatError("missing META signature")
	}

	if string(data[dataOffset:dataOffset+4]) != dataSignature {
		return nil, brr.BadFormatError("missing DATA signature")
	}

	var sampleData = data[HEADER_SIZE:]

	var checksum = binary.LittleEndian.Uint16(data[checksumOffset:])
	var complement = binary.LittleEndian.Uint16(data[complementOffset:])

	if checksum^complement != 0xFFFF {
		return nil, brr.BadFormatError("checksum complement mismatch")
	}

	if Checksum(sampleData) != checksum {
		return nil, brr.BadFormatError("checksum mismatch")
	}

	var blockCount = int(binary.LittleEndian.Uint16(data[blockCountOffset:]))
	var length = int(binary.LittleEndian.Uint16(data[lengthOffset:]))

	if length != len(sampleData) || blockCount*brr.BRR_BLOCK_SIZE != length {
		return nil, brr.BadFormatError("sample length fields disagree with the data")
	}

	var frequency = int32(binary.LittleEndian.Uint32(data[frequencyOffset:]))

	if frequency <= 0 {
		return nil, brr.BadFormatError("non positive encoding frequency")
	}

	var behavior = LoopBehavior(data[loopBehaviorOffset])

	if behavior > MISALIGNED {
		return nil, brr.BadFormatError("unknown loop behavior")
	}

	var loopBlock = int(binary.LittleEndian.Uint16(data[loopBlockOffset:]))
	var loopPoint = binary.LittleEndian.Uint16(data[loopPointOffset:])

	if behavior == LOOPING {
		if int(loopPoint) != loopBlock*brr.BRR_BLOCK_SIZE {
			return nil, brr.BadFormatError("loop block and loop point disagree")
		}

		if int(loopPoint) >= length {
			return nil, brr.BadFormatError("loop point past the sample data")
		}
	}

	var finalHeader = sampleData[(blockCount-1)*brr.BRR_BLOCK_SIZE]

	if finalHeader&brr.END_FLAG == 0 {
		return nil, brr.BadFormatError("final block is missing the end flag")
	}

	var loopFlag = finalHeader&brr.LOOP_FLAG != 0
	var shouldLoop = behavior != NON_LOOPING

	if loopFlag != shouldLoop {
		return nil, brr.BadFormatError("loop behavior disagrees with the end block flags")
	}

	issues := brr.ValidateData(sampleData, int(loopPoint), behavior == LOOPING)

	if issues.Has(brr.UNRESOLVABLE) {
		return nil, brr.UnresolvableDataError{Issues: issues}
	}

	sample, err := brr.SampleFromBytes(sampleData)

	if err != nil {
		return nil, err
	}

	if behavior == LOOPING {
		sample.SetLoopBlock(loopBlock)
	}

	var result = SuiteSample{
		VxPitch:           normalizeVxPitch(binary.LittleEndian.Uint16(data[vxPitchOffset:])),
		EncodingFrequency: frequency,
		LoopBehavior:      behavior,
		LoopPoint:         loopPoint,
		Sample:            sample,
	}

	// The name bytes are Latin-1, not UTF-8; widen them rune by rune.
	var nameRunes = make([]rune, NAME_LENGTH)
	for i, b := range data[nameOffset : nameOffset+NAME_LENGTH] {
		nameRunes[i] = rune(b)
	}

	err = result.SetInstrumentName(strings.TrimRight(string(nameRunes), " "))

	if err != nil {
		return nil, err
	}

	return &result, nil
}

func normalizeVxPitch(pitch uint16) uint16 {
	if pitch > 0x3FFF {
		return 0
	}

	return pitch
}
