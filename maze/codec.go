package maze

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headerSize = 8

	// maxEncodedDimension bounds decoded sizes so a corrupt header cannot
	// trigger a huge allocation.
	maxEncodedDimension = 1 << 14
)

var ErrMalformed = errors.New("malformed maze payload")

// MarshalBinary encodes the maze as a big-endian uint32 width, a big-endian
// uint32 height and the walls packed eight per byte in index order, least
// significant bit first.
func (m *Maze) MarshalBinary() ([]byte, error) {
	data := make([]byte, headerSize+packedSize(len(m.walls)))
	binary.BigEndian.PutUint32(data[0:4], uint32(m.dimensions.Width))
	binary.BigEndian.PutUint32(data[4:8], uint32(m.dimensions.Height))

	bits := data[headerSize:]
	for i, present := range m.walls {
		if present {
			bits[i/8] |= 1 << (i % 8)
		}
	}
	return data, nil
}

// Decode rebuilds a maze from the output of MarshalBinary.
func Decode(data []byte) (*Maze, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformed, len(data))
	}

	width := binary.BigEndian.Uint32(data[0:4])
	height := binary.BigEndian.Uint32(data[4:8])
	if width == 0 || height == 0 || width > maxEncodedDimension || height > maxEncodedDimension {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformed, width, height)
	}

	dimensions := Dimensions{Width: int(width), Height: int(height)}
	count := dimensions.wallCount()
	bits := data[headerSize:]
	if len(bits) != packedSize(count) {
		return nil, fmt.Errorf("%w: expected %d wall bytes, got %d", ErrMalformed, packedSize(count), len(bits))
	}

	walls := make([]bool, count)
	for i := range walls {
		walls[i] = bits[i/8]&(1<<(i%8)) != 0
	}

	return &Maze{
		dimensions: dimensions,
		walls:      walls,
	}, nil
}

func packedSize(n int) int {
	return (n + 7) / 8
}
