// Package dense: the binary matrix dump format.
//
// Layout: five little-endian int32 header words — element type code,
// rows, cols, element size in bytes, reserved zero — followed by the
// column-major payload. Files are written and read through memory
// mappings; the format is what the compression validator dumps and what
// offline tooling inspects.

package dense

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/aurelienfalco/hmat-oss/scalar"
)

// dumpHeaderSize is the byte size of the five int32 header words.
const dumpHeaderSize = 5 * 4

// ToFile writes the matrix to path in the dump format, replacing any
// existing file. Requires contiguous storage (ld == rows).
func (m *Matrix[T]) ToFile(path string) error {
	if m.ld != m.rows {
		panic(panicNotContiguous)
	}

	elemSize := scalar.Size[T]()
	size := int64(dumpHeaderSize) + int64(m.rows)*int64(m.cols)*int64(elemSize)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = f.Truncate(size); err != nil {
		return err
	}

	mapped, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return err
	}
	defer mapped.Unmap()

	binary.LittleEndian.PutUint32(mapped[0:], uint32(scalar.Code[T]()))
	binary.LittleEndian.PutUint32(mapped[4:], uint32(m.rows))
	binary.LittleEndian.PutUint32(mapped[8:], uint32(m.cols))
	binary.LittleEndian.PutUint32(mapped[12:], uint32(elemSize))
	binary.LittleEndian.PutUint32(mapped[16:], 0)

	encodeElements(m.data[:m.rows*m.cols], mapped[dumpHeaderSize:])

	return mapped.Flush()
}

// MatrixFromFile reads a dump written by ToFile. Returns
// ErrDumpTypeMismatch when the file holds a different element kind and
// ErrBadDumpHeader when the header does not match the file size.
func MatrixFromFile[T scalar.Scalar](path string) (*Matrix[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mapped.Unmap()

	if len(mapped) < dumpHeaderSize {
		return nil, ErrBadDumpHeader
	}
	code := int32(binary.LittleEndian.Uint32(mapped[0:]))
	rows := int(binary.LittleEndian.Uint32(mapped[4:]))
	cols := int(binary.LittleEndian.Uint32(mapped[8:]))
	elemSize := int(binary.LittleEndian.Uint32(mapped[12:]))

	if code != scalar.Code[T]() || elemSize != scalar.Size[T]() {
		return nil, ErrDumpTypeMismatch
	}
	if rows <= 0 || cols <= 0 ||
		int64(len(mapped)) != int64(dumpHeaderSize)+int64(rows)*int64(cols)*int64(elemSize) {
		return nil, ErrBadDumpHeader
	}

	m := newMatrix[T](rows, cols)
	decodeElements(mapped[dumpHeaderSize:], m.data)

	return m, nil
}

// encodeElements serializes elements little-endian into dst.
func encodeElements[T scalar.Scalar](src []T, dst []byte) {
	switch s := any(src).(type) {
	case []float32:
		for i, v := range s {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range s {
			binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(v))
		}
	case []complex64:
		for i, v := range s {
			binary.LittleEndian.PutUint32(dst[i*8:], math.Float32bits(real(v)))
			binary.LittleEndian.PutUint32(dst[i*8+4:], math.Float32bits(imag(v)))
		}
	case []complex128:
		for i, v := range s {
			binary.LittleEndian.PutUint64(dst[i*16:], math.Float64bits(real(v)))
			binary.LittleEndian.PutUint64(dst[i*16+8:], math.Float64bits(imag(v)))
		}
	}
}

// decodeElements deserializes little-endian bytes into dst.
func decodeElements[T scalar.Scalar](src []byte, dst []T) {
	switch d := any(dst).(type) {
	case []float32:
		for i := range d {
			d[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
		}
	case []float64:
		for i := range d {
			d[i] = math.Float64frombits(binary.LittleEndian.Uint64(src[i*8:]))
		}
	case []complex64:
		for i := range d {
			d[i] = complex(
				math.Float32frombits(binary.LittleEndian.Uint32(src[i*8:])),
				math.Float32frombits(binary.LittleEndian.Uint32(src[i*8+4:])))
		}
	case []complex128:
		for i := range d {
			d[i] = complex(
				math.Float64frombits(binary.LittleEndian.Uint64(src[i*16:])),
				math.Float64frombits(binary.LittleEndian.Uint64(src[i*16+8:])))
		}
	}
}
