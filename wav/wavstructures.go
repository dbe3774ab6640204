package wav

import (
	"encoding/binary"

	"github.com/brrsuite/wav2brr/brr"
)

const FORMAT_PCM = 1

const RIFF_HEADER = 0x52494646
const FORMAT_HEADER = 0x666d7420
const DATA_HEADER = 0x64617461
const WAVE_FORMAT = 0x57415645

type WaveHeader struct {
	Format        uint16
	NChannels     uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

type Wave struct {
	Header WaveHeader
	Data   []byte
}

// FromSamples builds a 16 bit mono wave around a PCM buffer.
func FromSamples(samples []int16, sampleRate int) *Wave {
	var data = make([]byte, 2*len(samples))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}

	return &Wave{
		Header: WaveHeader{
			Format:        FORMAT_PCM,
			NChannels:     1,
			SampleRate:    uint32(sampleRate),
			ByteRate:      uint32(sampleRate) * 2,
			BlockAlign:    2,
			BitsPerSample: 16,
		},
		Data: data,
	}
}

// MonoSamples extracts the wave as 16 bit mono PCM, averaging channels and
// widening 8 bit unsigned data.
func (wave *Wave) MonoSamples() ([]int16, error) {
	if wave.Header.Format != FORMAT_PCM {
		return nil, brr.BadFormatError("only PCM wave data is supported")
	}

	var channels = int(wave.Header.NChannels)

	if channels < 1 {
		return nil, brr.BadFormatError("wave header reports zero channels")
	}

	switch wave.Header.BitsPerSample {
	case 16:
		return mixdown16(wave.Data, channels), nil

	case 8:
		return mixdown8(wave.Data, channels), nil
	}

	return nil, brr.BadFormatError("only 8 and 16 bit wave data is supported")
}

func mixdown16(data []byte, channels int) []int16 {
	var frameCount = len(data) / (2 * channels)
	var result = make([]int16, frameCount)

	for frame := 0; frame < frameCount; frame++ {
		var sum int32 = 0

		for channel := 0; channel < channels; channel++ {
			sum += int32(int16(binary.LittleEndian.Uint16(data[2*(frame*channels+channel):])))
		}

		result[frame] = int16(sum / int32(channels))
	}

	return result
}

func mixdown8(data []byte, channels int) []int16 {
	var frameCount = len(data) / channels
	var result = make([]int16, frameCount)

	for frame := 0; frame < frameCount; frame++ {
		var sum int32 = 0

		for channel := 0; channel < channels; channel++ {
			sum += int32(data[frame*channels+channel]) - 0x80
		}

		result[frame] = int16(sum / int32(channels) << 8)
	}

	return result
}
