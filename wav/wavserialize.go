package wav

import (
	"bytes"
	"encoding/binary"
	"io"
)

func formatChunk(header *WaveHeader) []byte {
	var result bytes.Buffer

	binary.Write(&result, binary.LittleEndian, header.Format)
	binary.Write(&result, binary.LittleEndian, header.NChannels)
	binary.Write(&result, binary.LittleEndian, header.SampleRate)
	binary.Write(&result, binary.LittleEndian, header.ByteRate)
	binary.Write(&result, binary.LittleEndian, header.BlockAlign)
	binary.Write(&result, binary.LittleEndian, header.BitsPerSample)

	return result.Bytes()
}

func (wave *Wave) Serialize(out io.Writer) error {
	var format = formatChunk(&wave.Header)

	err := binary.Write(out, binary.BigEndian, uint32(RIFF_HEADER))

	if err != nil {
		return err
	}

	binary.Write(out, binary.LittleEndian, uint32(len(format)+len(wave.Data)+20))
	binary.Write(out, binary.BigEndian, uint32(WAVE_FORMAT))

	binary.Write(out, binary.BigEndian, uint32(FORMAT_HEADER))
	binary.Write(out, binary.LittleEndian, uint32(len(format)))
	out.Write(format)

	binary.Write(out, binary.BigEndian, uint32(DATA_HEADER))
	err = binary.Write(out, binary.LittleEndian, uint32(len(wave.Data)))

	if err != nil {
		return err
	}

	_, err = out.Write(wave.Data)
	return err
}
