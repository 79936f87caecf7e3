// Package codec defines the format-agnostic load/save contract every voxel
// file format implements (spec §4.D/§6): a seekable byte-stream interface,
// a Codec interface, a FormatFlags bitmask, and a plain, explicitly
// constructed Registry (REDESIGN FLAGS: no package-level global registry).
package codec

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrTruncated is returned by the Read* helpers when the stream ends before
// the requested field is fully read — a malformed-input condition per
// spec §7, not a Go error the caller should retry.
var ErrTruncated = errors.New("codec: truncated stream")

// ReadStream is the seekable read contract codecs see. Implementations may
// not assume the stream supports anything beyond Read/Seek — no assumption
// about total size caching, etc.
type ReadStream interface {
	io.Reader
	io.Seeker
}

// WriteStream is the symmetric write contract.
type WriteStream interface {
	io.Writer
	io.Seeker
}

// Pos returns the stream's current offset.
func Pos(s io.Seeker) (int64, error) { return s.Seek(0, io.SeekCurrent) }

// SeekAbs seeks to an absolute offset.
func SeekAbs(s io.Seeker, abs int64) error {
	_, err := s.Seek(abs, io.SeekStart)
	return err
}

// Skip advances the stream by n bytes.
func Skip(s io.Seeker, n int64) error {
	_, err := s.Seek(n, io.SeekCurrent)
	return err
}

// Size returns the total stream length, restoring the original position.
func Size(s ReadStream) (int64, error) {
	cur, err := Pos(s)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// ReadU8 reads one byte.
func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, wrapTruncated(err)
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16 (AoS-VXL and the rest of this
// framework default to LE unless a codec specifies otherwise, spec §6).
func ReadU16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, wrapTruncated(err)
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadU32 reads a little-endian uint32.
func ReadU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, wrapTruncated(err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadI32 reads a little-endian int32.
func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

// ReadString reads up to max bytes into a string. If zeroTerminated, it
// reads exactly max bytes and truncates at the first NUL; otherwise it
// returns the full max-byte buffer.
func ReadString(r io.Reader, max int, zeroTerminated bool) (string, error) {
	buf := make([]byte, max)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", wrapTruncated(err)
	}
	if zeroTerminated {
		for i, b := range buf {
			if b == 0 {
				return string(buf[:i]), nil
			}
		}
	}
	return string(buf), nil
}

// WriteU8 writes one byte.
func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// WriteU16 writes a little-endian uint16.
func WriteU16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteU32 writes a little-endian uint32.
func WriteU32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteI32 writes a little-endian int32.
func WriteI32(w io.Writer, v int32) error {
	return WriteU32(w, uint32(v))
}

func wrapTruncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
