package brs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brrsuite/wav2brr/brr"
)

func testSample(t *testing.T, blocks int, loopBlock int) *brr.Sample {
	sample, err := brr.NewSample(blocks)

	if err != nil {
		t.Fatal(err)
	}

	sample.SetLoopBlock(loopBlock)
	sample.CorrectEndFlags()
	return sample
}

func TestChecksumSingleZeroBlock(t *testing.T) {
	var data = make([]byte, 9)
	data[0] = 0x01

	if got := Checksum(data); got != 0x0010 {
		t.Errorf("checksum: got 0x%04X, want 0x0010", got)
	}
}

func TestChecksumDeterministic(t *testing.T) {
	var data = []byte{0x24, 1, 2, 3, 4, 5, 6, 7, 8}

	if Checksum(data) != Checksum(data) {
		t.Error("checksum should be deterministic")
	}
}

func TestSerializeHeader(t *testing.T) {
	suite, err := New(testSample(t, 1, brr.NO_LOOP), "TEST")

	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer

	if err := suite.Serialize(&buffer); err != nil {
		t.Fatal(err)
	}

	var data = buffer.Bytes()

	if len(data) != HEADER_SIZE+9 {
		t.Fatalf("got %d bytes", len(data))
	}

	if string(data[0:4]) != "BRRS" || string(data[8:12]) != "META" || string(data[51:55]) != "DATA" {
		t.Error("signatures missing")
	}

	if string(data[12:36]) != "TEST"+strings.Repeat(" ", 20) {
		t.Errorf("name field: %q", string(data[12:36]))
	}

	// Single zero block with only the end flag: checksum 0x0010.
	if data[4] != 0x10 || data[5] != 0x00 {
		t.Errorf("checksum bytes: %02X %02X", data[4], data[5])
	}

	if data[6] != 0xEF || data[7] != 0xFF {
		t.Errorf("complement bytes: %02X %02X", data[6], data[7])
	}

	if data[60] != 1 || data[61] != 0 || data[62] != 9 || data[63] != 0 {
		t.Error("block count or length fields wrong")
	}
}

func TestChecksumComplement(t *testing.T) {
	suite, _ := New(testSample(t, 3, brr.NO_LOOP), "x")

	var buffer bytes.Buffer
	suite.Serialize(&buffer)

	var data = buffer.Bytes()
	var checksum = uint16(data[4]) | uint16(data[5])<<8
	var complement = uint16(data[6]) | uint16(data[7])<<8

	if checksum^complement != 0xFFFF {
		t.Errorf("checksum 0x%04X and complement 0x%04X should XOR to 0xFFFF", checksum, complement)
	}
}

func TestRoundTrip(t *testing.T) {
	sample := testSample(t, 4, 2)

	// Give the stream some texture.
	block, _ := sample.Block(1)
	block.SetRange(5)
	block.SetFilter(1)
	block.SetSample(4, -3)

	suite, err := New(sample, "Strings")

	if err != nil {
		t.Fatal(err)
	}

	suite.SetVxPitch(0x2000)
	suite.EncodingFrequency = 16000

	var buffer bytes.Buffer

	if err := suite.Serialize(&buffer); err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(buffer.Bytes())

	if err != nil {
		t.Fatal(err)
	}

	if parsed.InstrumentName() != suite.InstrumentName() {
		t.Errorf("name: %q", parsed.InstrumentName())
	}

	if parsed.VxPitch != 0x2000 || parsed.EncodingFrequency != 16000 {
		t.Errorf("metadata: pitch 0x%04X, frequency %d", parsed.VxPitch, parsed.EncodingFrequency)
	}

	if parsed.LoopBehavior != LOOPING || parsed.LoopPoint != 18 {
		t.Errorf("loop: behavior %d, point %d", parsed.LoopBehavior, parsed.LoopPoint)
	}

	if parsed.Sample.LoopBlock() != 2 {
		t.Errorf("parsed loop block %d", parsed.Sample.LoopBlock())
	}

	if !bytes.Equal(parsed.Sample.Raw(), sample.Raw()) {
		t.Error("sample data should round trip")
	}
}

func TestParseRejectsCorruption(t *testing.T) {
	suite, _ := New(testSample(t, 2, brr.NO_LOOP), "ok")

	var buffer bytes.Buffer
	suite.Serialize(&buffer)

	var good = buffer.Bytes()

	if _, err := Parse(good[:40]); err == nil {
		t.Error("short file should fail")
	}

	var bad = append([]byte(nil), good...)
	bad[0] = 'X'

	if _, err := Parse(bad); err == nil {
		t.Error("bad signature should fail")
	}

	bad = append([]byte(nil), good...)
	bad[HEADER_SIZE+3] ^= 0x40

	if _, err := Parse(bad); err == nil {
		t.Error("corrupted data should fail the checksum")
	}

	bad = append([]byte(nil), good...)
	bad[6] ^= 0x01

	if _, err := Parse(bad); err == nil {
		t.Error("corrupted complement should fail")
	}

	bad = append([]byte(nil), good...)
	bad[60] = 3

	if _, err := Parse(bad); err == nil {
		t.Error("wrong block count should fail")
	}
}

func TestSanitizeName(t *testing.T) {
	if got := SanitizeName("a\x01b\x7fc\u00add"); got != "abcd" {
		t.Errorf("control stripping: %q", got)
	}

	if got := SanitizeName("a\u00a0b"); got != "a b" {
		t.Errorf("non breaking space: %q", got)
	}

	if got := SanitizeName("tone\u2713"); got != "tone?" {
		t.Errorf("non Latin-1 fallback: %q", got)
	}
}

func TestSetInstrumentNameTooLong(t *testing.T) {
	suite, _ := New(testSample(t, 1, brr.NO_LOOP), "")

	if err := suite.SetInstrumentName(strings.Repeat("a", 25)); err == nil {
		t.Error("25 character name should fail")
	}

	if err := suite.SetInstrumentName(strings.Repeat("a", 24)); err != nil {
		t.Error("24 character name should be accepted")
	}
}

func TestSetVxPitch(t *testing.T) {
	suite, _ := New(testSample(t, 1, brr.NO_LOOP), "")

	suite.SetVxPitch(0x3FFF)

	if suite.VxPitch != 0x3FFF {
		t.Error("in range pitch should be stored")
	}

	suite.SetVxPitch(0x4000)

	if suite.VxPitch != 0 {
		t.Error("out of range pitch should store as unknown")
	}
}

func TestSetLoopPointBehaviors(t *testing.T) {
	suite, _ := New(testSample(t, 4, brr.NO_LOOP), "")

	suite.SetLoopPoint(-1)

	if suite.LoopBehavior != NON_LOOPING {
		t.Errorf("behavior: %d", suite.LoopBehavior)
	}

	suite.SetLoopPoint(18)

	if suite.LoopBehavior != LOOPING || suite.Sample.LoopBlock() != 2 {
		t.Errorf("behavior %d, loop block %d", suite.LoopBehavior, suite.Sample.LoopBlock())
	}

	suite.SetLoopPoint(10)

	if suite.LoopBehavior != MISALIGNED {
		t.Errorf("behavior: %d", suite.LoopBehavior)
	}

	suite.SetLoopPoint(100)

	if suite.LoopBehavior != EXTRINSIC {
		t.Errorf("behavior: %d", suite.LoopBehavior)
	}
}
