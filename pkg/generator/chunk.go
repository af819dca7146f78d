// chunk.go - PNG chunk framing and parsing.
package generator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// chunkOverhead is the length, type and CRC fields around each payload.
const chunkOverhead = 12

var (
	ErrSignature = errors.New("missing PNG signature")
	ErrTruncated = errors.New("truncated chunk")
	ErrChecksum  = errors.New("chunk CRC mismatch")
)

// Chunk is one length-prefixed, CRC-protected segment of a PNG stream.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

// writeChunk appends a framed chunk to buf. The CRC covers the type tag and
// the payload, not the length.
func writeChunk(buf *bytes.Buffer, tag string, payload []byte) {
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], uint32(len(payload)))
	buf.Write(u32[:])
	buf.WriteString(tag)
	buf.Write(payload)
	binary.BigEndian.PutUint32(u32[:], chunkCRC([]byte(tag), payload))
	buf.Write(u32[:])
}

func chunkCRC(tag, payload []byte) uint32 {
	return crc32.Update(crc32.ChecksumIEEE(tag), crc32.IEEETable, payload)
}

// ReadChunks splits a PNG stream into its chunks, checking the signature and
// every CRC. Chunk data aliases data.
func ReadChunks(data []byte) ([]Chunk, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, ErrSignature
	}

	var chunks []Chunk
	rest := data[len(pngSignature):]
	for len(rest) > 0 {
		if len(rest) < chunkOverhead {
			return nil, fmt.Errorf("chunk %d: %w", len(chunks), ErrTruncated)
		}
		n := binary.BigEndian.Uint32(rest[0:4])
		if uint64(n) > uint64(len(rest)-chunkOverhead) {
			return nil, fmt.Errorf("chunk %d: length %d: %w", len(chunks), n, ErrTruncated)
		}

		tag := rest[4:8]
		payload := rest[8 : 8+n]
		stored := binary.BigEndian.Uint32(rest[8+n : chunkOverhead+n])
		if sum := chunkCRC(tag, payload); sum != stored {
			return nil, fmt.Errorf("%s chunk: %w (stored %08x, computed %08x)", tag, ErrChecksum, stored, sum)
		}

		chunks = append(chunks, Chunk{Type: string(tag), Data: payload, CRC: stored})
		rest = rest[chunkOverhead+n:]
	}
	return chunks, nil
}
