package wav

import (
	"encoding/binary"
	"io"

	"github.com/brrsuite/wav2brr/brr"
)

func parseHeader(reader io.ReadSeeker, header *WaveHeader) error {
	err := binary.Read(reader, binary.LittleEndian, &header.Format)

	if err != nil {
		return err
	}

	binary.Read(reader, binary.LittleEndian, &header.NChannels)
	binary.Read(reader, binary.LittleEndian, &header.SampleRate)
	binary.Read(reader, binary.LittleEndian, &header.ByteRate)
	binary.Read(reader, binary.LittleEndian, &header.BlockAlign)
	return binary.Read(reader, binary.LittleEndian, &header.BitsPerSample)
}

// Parse walks the RIFF chunk list, keeping the fmt and data chunks and
// skipping everything else.
func Parse(reader io.ReadSeeker) (*Wave, error) {
	var result Wave

	var chunkID uint32
	err := binary.Read(reader, binary.BigEndian, &chunkID)

	if err != nil {
		return nil, err
	}

	if chunkID != RIFF_HEADER {
		return nil, brr.BadFormatError("missing RIFF signature")
	}

	var chunkSize uint32
	binary.Read(reader, binary.LittleEndian, &chunkSize)

	err = binary.Read(reader, binary.BigEndian, &chunkID)

	if err != nil {
		return nil, err
	}

	if chunkID != WAVE_FORMAT {
		return nil, brr.BadFormatError("missing WAVE signature")
	}

	var hasHeader = false
	var hasData = false

	for !hasHeader || !hasData {
		err = binary.Read(reader, binary.BigEndian, &chunkID)

		if err != nil {
			return nil, brr.BadFormatError("wave file ended before fmt and data chunks")
		}

		err = binary.Read(reader, binary.LittleEndian, &chunkSize)

		if err != nil {
			return nil, err
		}

		start, _ := reader.Seek(0, io.SeekCurrent)

		if chunkID == FORMAT_HEADER {
			err = parseHeader(reader, &result.Header)

			if err != nil {
				return nil, err
			}

			hasHeader = true
		} else if chunkID == DATA_HEADER {
			result.Data = make([]byte, chunkSize)
			_, err = io.ReadFull(reader, result.Data)

			if err != nil {
				return nil, err
			}

			hasData = true
		}

		_, err = reader.Seek(start+int64(chunkSize), io.SeekStart)

		if err != nil {
			return nil, err
		}
	}

	return &result, nil
}
