package brr

import "testing"

func TestDecodeSilence(t *testing.T) {
	sample, err := Encode(make([]int16, 64), NO_LOOP, nil)

	if err != nil {
		t.Fatal(err)
	}

	var output = Decode(sample, DEFAULT_VX_PITCH, 0)

	if len(output) != 64 {
		t.Fatalf("got %d output samples", len(output))
	}

	for i, s := range output {
		if s != 0 {
			t.Fatalf("output sample %d is %d, want 0", i, s)
		}
	}
}

func TestDecodeLeadingZeros(t *testing.T) {
	// Two zero blocks ahead of signal: after the four priming samples the
	// history is fully flushed, so the first 16 outputs are silent.
	var pcm = make([]int16, 96)

	for i := 32; i < len(pcm); i++ {
		pcm[i] = int16((i - 32) * 250)
	}

	var options = DefaultEncodeOptions()
	options.ForceFilter0OnLoop = true

	sample, err := Encode(pcm, NO_LOOP, &options)

	if err != nil {
		t.Fatal(err)
	}

	var output = Decode(sample, DEFAULT_VX_PITCH, 0)

	for i := 0; i < 16; i++ {
		if output[i] != 0 {
			t.Errorf("output sample %d is %d, want 0", i, output[i])
		}
	}
}

func TestDecodeOutputLength(t *testing.T) {
	sample, _ := Encode(rampSignal(160), NO_LOOP, nil)

	if got := len(Decode(sample, DEFAULT_VX_PITCH, 0)); got != 160 {
		t.Errorf("non looping output length: got %d", got)
	}
}

func TestDecodeLoopIterations(t *testing.T) {
	sample, err := Encode(rampSignal(64), 2, nil)

	if err != nil {
		t.Fatal(err)
	}

	// minSeconds 0 still plays the loop once.
	if got := len(Decode(sample, DEFAULT_VX_PITCH, 0)); got != (4+2)*PCM_BLOCK_SIZE {
		t.Errorf("single iteration output length: got %d", got)
	}

	// A short loop asked to fill ten seconds hits the iteration cap.
	var capped = len(Decode(sample, DEFAULT_VX_PITCH, 60))

	if capped != (4+777*2)*PCM_BLOCK_SIZE {
		t.Errorf("capped output length: got %d", capped)
	}
}

func TestDecodePitchFallback(t *testing.T) {
	sample, _ := Encode(rampSignal(64), NO_LOOP, nil)

	var unity = Decode(sample, DEFAULT_VX_PITCH, 0)
	var zero = Decode(sample, 0, 0)
	var huge = Decode(sample, 0x4000, 0)

	for i := range unity {
		if unity[i] != zero[i] || unity[i] != huge[i] {
			t.Fatal("out of range pitches should fall back to 0x1000")
		}
	}
}

func TestDecodeHalfPitch(t *testing.T) {
	sample, _ := Encode(rampSignal(64), NO_LOOP, nil)

	// Half pitch consumes one source sample every other output sample.
	var output = Decode(sample, 0x0800, 0)

	if len(output) != 64 {
		t.Errorf("output length: got %d", len(output))
	}
}
