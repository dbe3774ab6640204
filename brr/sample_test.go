package brr

import (
	"bytes"
	"testing"
)

func TestNewSampleBounds(t *testing.T) {
	if _, err := NewSample(0); err == nil {
		t.Error("zero blocks should fail")
	}

	if _, err := NewSample(-1); err == nil {
		t.Error("negative blocks should fail")
	}

	if _, err := NewSample(MAX_BLOCKS + 1); err == nil {
		t.Error("oversized sample should fail")
	}

	sample, err := NewSample(3)

	if err != nil {
		t.Fatal(err)
	}

	if sample.BlockCount() != 3 || sample.DataLength() != 27 {
		t.Errorf("got %d blocks, %d bytes", sample.BlockCount(), sample.DataLength())
	}

	if sample.Loops() {
		t.Error("new sample should not loop")
	}
}

func TestSampleFromBytes(t *testing.T) {
	if _, err := SampleFromBytes(nil); err == nil {
		t.Error("empty data should fail")
	}

	if _, err := SampleFromBytes(make([]byte, 10)); err == nil {
		t.Error("misaligned data should fail")
	}

	var source = make([]byte, 18)
	source[0] = 0xAB

	sample, err := SampleFromBytes(source)

	if err != nil {
		t.Fatal(err)
	}

	source[0] = 0
	if sample.data[0] != 0xAB {
		t.Error("SampleFromBytes should copy, not alias")
	}
}

func TestSetLoopBlockNormalizes(t *testing.T) {
	sample, _ := NewSample(4)

	sample.SetLoopBlock(2)

	if sample.LoopBlock() != 2 || sample.LoopOffset() != 18 {
		t.Errorf("loop block %d, offset %d", sample.LoopBlock(), sample.LoopOffset())
	}

	sample.SetLoopBlock(4)

	if sample.LoopBlock() != NO_LOOP || sample.LoopOffset() != NO_LOOP {
		t.Error("out of range loop block should normalize to NO_LOOP")
	}

	sample.SetLoopBlock(-5)

	if sample.Loops() {
		t.Error("negative loop block should normalize to NO_LOOP")
	}
}

func TestCorrectEndFlags(t *testing.T) {
	sample, _ := NewSample(3)

	// Scatter bogus flags everywhere.
	for i := 0; i < 3; i++ {
		block := sample.block(i)
		block.SetEndFlag(true)
		block.SetLoopFlag(true)
	}

	sample.SetLoopBlock(1)
	sample.CorrectEndFlags()

	var check = func() {
		for i := 0; i < 2; i++ {
			block := sample.block(i)
			if block.EndFlag() || block.LoopFlag() {
				t.Errorf("block %d should carry no flags", i)
			}
		}

		final := sample.block(2)
		if !final.EndFlag() || !final.LoopFlag() {
			t.Error("final block should carry end and loop flags")
		}
	}

	check()

	// Idempotent.
	sample.CorrectEndFlags()
	check()

	sample.SetLoopBlock(NO_LOOP)
	sample.CorrectEndFlags()

	if sample.block(2).LoopFlag() {
		t.Error("non looping sample should not set the loop flag")
	}

	if !sample.block(2).EndFlag() {
		t.Error("end flag should stay on the final block")
	}
}

func TestSerializeRaw(t *testing.T) {
	sample, _ := NewSample(2)
	sample.block(0).SetHeader(0xC4)
	sample.CorrectEndFlags()

	var buffer bytes.Buffer

	if err := sample.SerializeRaw(&buffer); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buffer.Bytes(), sample.Raw()) {
		t.Error("raw serialization should equal the backing bytes")
	}
}

func TestSerializeLoopHeadered(t *testing.T) {
	sample, _ := NewSample(3)
	sample.SetLoopBlock(2)
	sample.CorrectEndFlags()

	var buffer bytes.Buffer

	if err := sample.SerializeLoopHeadered(&buffer); err != nil {
		t.Fatal(err)
	}

	var data = buffer.Bytes()

	if len(data) != 2+27 {
		t.Fatalf("got %d bytes", len(data))
	}

	if data[0] != 18 || data[1] != 0 {
		t.Errorf("loop offset bytes: %02X %02X", data[0], data[1])
	}

	parsed, err := ParseLoopHeadered(data)

	if err != nil {
		t.Fatal(err)
	}

	if parsed.LoopBlock() != 2 {
		t.Errorf("parsed loop block %d", parsed.LoopBlock())
	}
}

func TestSerializeLoopHeaderedSentinel(t *testing.T) {
	sample, _ := NewSample(2)
	sample.CorrectEndFlags()

	var buffer bytes.Buffer
	sample.SerializeLoopHeadered(&buffer)

	var sentinel = int(buffer.Bytes()[0]) | int(buffer.Bytes()[1])<<8

	if sentinel != sample.SampleCount() {
		t.Errorf("non looping sentinel: got %d, want %d", sentinel, sample.SampleCount())
	}

	parsed, err := ParseLoopHeadered(buffer.Bytes())

	if err != nil {
		t.Fatal(err)
	}

	if parsed.Loops() {
		t.Error("sentinel offset should parse as non looping")
	}
}
