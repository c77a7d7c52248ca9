package internal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// --------------------------------------------------------------------------
// Stream Layout
// --------------------------------------------------------------------------

const (
	Magic        = "RIDESNAP" // stream header
	MaxStringLen = 1 << 20    // upper bound for a single string field
)

// Tag is the kind discriminator that starts every encoded object
type Tag uint8

const (
	TagNil      Tag = 0x00 // absent reference
	TagRef      Tag = 0x01 // back-reference to an already written object
	TagCompany  Tag = 0x10
	TagCustomer Tag = 0x20
	TagVehicle  Tag = 0x30
	TagDriver   Tag = 0x40
	TagOrder    Tag = 0x50
	TagTrip     Tag = 0x60
)

func (t Tag) String() string {
	switch t {
	case TagNil:
		return "Nil"
	case TagRef:
		return "Ref"
	case TagCompany:
		return "Company"
	case TagCustomer:
		return "Customer"
	case TagVehicle:
		return "Vehicle"
	case TagDriver:
		return "Driver"
	case TagOrder:
		return "Order"
	case TagTrip:
		return "Trip"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(t))
	}
}

// FormatError reports readable bytes that do not form a valid value
type FormatError struct {
	What  string // what was being decoded
	Value uint64 // the offending value
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.What, e.Value)
}

// RangeError reports a value that has no representation in the stream
type RangeError struct {
	What  string // what was being encoded
	Value int64  // the offending value or length
	Limit int64  // the largest representable value
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [0, %d]", e.What, e.Value, e.Limit)
}

// --------------------------------------------------------------------------
// Writer
// --------------------------------------------------------------------------

// Writer encodes scalar values in big endian order
type Writer struct {
	w   io.Writer
	n   int64
	err error
	buf [8]byte
}

// NewWriter creates a new writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error that occurred while writing
func (w *Writer) Err() error {
	return w.err
}

// Written returns the number of bytes written so far
func (w *Writer) Written() int64 {
	return w.n
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	w.err = err
}

// Raw writes p unchanged
func (w *Writer) Raw(p []byte) {
	w.write(p)
}

// Tag writes an object tag
func (w *Writer) Tag(t Tag) {
	w.Uint8(uint8(t))
}

// Uint8 writes a single byte
func (w *Writer) Uint8(v uint8) {
	w.buf[0] = v
	w.write(w.buf[:1])
}

// Bool writes a boolean as 0 or 1
func (w *Writer) Bool(b bool) {
	if b {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

// Uint32 writes a 4 byte unsigned integer
func (w *Writer) Uint32(v uint32) {
	binary.BigEndian.PutUint32(w.buf[:4], v)
	w.write(w.buf[:4])
}

// Int64 writes an 8 byte signed integer
func (w *Writer) Int64(v int64) {
	binary.BigEndian.PutUint64(w.buf[:8], uint64(v))
	w.write(w.buf[:8])
}

// Float64 writes the IEEE-754 bits of v
func (w *Writer) Float64(v float64) {
	binary.BigEndian.PutUint64(w.buf[:8], math.Float64bits(v))
	w.write(w.buf[:8])
}

// Count writes a non-negative int as a 4 byte unsigned integer.
// Values outside [0, MaxUint32] set a RangeError.
func (w *Writer) Count(what string, v int) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		w.fail(&RangeError{What: what, Value: int64(v), Limit: math.MaxUint32})
		return
	}
	w.Uint32(uint32(v))
}

// Text writes a length prefixed string.
// Strings longer than MaxStringLen set a RangeError.
func (w *Writer) Text(s string) {
	if len(s) > MaxStringLen {
		w.fail(&RangeError{What: "string length", Value: int64(len(s)), Limit: MaxStringLen})
		return
	}
	w.Uint32(uint32(len(s)))
	w.write([]byte(s))
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// --------------------------------------------------------------------------
// Reader
// --------------------------------------------------------------------------

// Reader decodes scalar values written by Writer
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader creates a new reader on top of r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// read fills p completely. Running out of data is always unexpected here.
func (r *Reader) read(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// Magic reads and verifies the stream header
func (r *Reader) Magic() error {
	p := make([]byte, len(Magic))
	if err := r.read(p); err != nil {
		return err
	}
	if string(p) != Magic {
		return &FormatError{What: "stream header", Value: binary.BigEndian.Uint64(p)}
	}
	return nil
}

// RecordTag reads the tag that starts a record.
// Unlike Tag it returns io.EOF if the stream ends cleanly before the record.
func (r *Reader) RecordTag() (Tag, error) {
	if _, err := io.ReadFull(r.r, r.buf[:1]); err != nil {
		return 0, err
	}
	return Tag(r.buf[0]), nil
}

// Tag reads an object tag
func (r *Reader) Tag() (Tag, error) {
	v, err := r.Uint8()
	return Tag(v), err
}

// Uint8 reads a single byte
func (r *Reader) Uint8() (uint8, error) {
	if err := r.read(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// Bool reads a boolean; any byte other than 0 or 1 is a FormatError
func (r *Reader) Bool() (bool, error) {
	v, err := r.Uint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &FormatError{What: "bool", Value: uint64(v)}
	}
}

// Uint32 reads a 4 byte unsigned integer
func (r *Reader) Uint32() (uint32, error) {
	if err := r.read(r.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(r.buf[:4]), nil
}

// Int64 reads an 8 byte signed integer
func (r *Reader) Int64() (int64, error) {
	if err := r.read(r.buf[:8]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(r.buf[:8])), nil
}

// Float64 reads an IEEE-754 double
func (r *Reader) Float64() (float64, error) {
	if err := r.read(r.buf[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(r.buf[:8])), nil
}

// Text reads a length prefixed string
func (r *Reader) Text() (string, error) {
	n, err := r.Uint32()
	if err != nil {
		return "", err
	}
	if n > MaxStringLen {
		return "", &FormatError{What: "string length", Value: uint64(n)}
	}
	p := make([]byte, n)
	if err := r.read(p); err != nil {
		return "", err
	}
	return string(p), nil
}
