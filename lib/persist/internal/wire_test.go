package internal

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Raw([]byte(Magic))
	w.Tag(TagDriver)
	w.Uint8(7)
	w.Bool(true)
	w.Bool(false)
	w.Uint32(math.MaxUint32)
	w.Int64(-42)
	w.Float64(1234.5678)
	w.Text("")
	w.Text("ZONA_PELIGROSA")
	require.NoError(t, w.Err())
	assert.Equal(t, int64(buf.Len()), w.Written())

	r := NewReader(&buf)
	require.NoError(t, r.Magic())

	tag, err := r.RecordTag()
	require.NoError(t, err)
	assert.Equal(t, TagDriver, tag)

	u8, err := r.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), u8)

	b, err := r.Bool()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = r.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	u32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), u32)

	i64, err := r.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i64)

	f64, err := r.Float64()
	require.NoError(t, err)
	assert.Equal(t, 1234.5678, f64)

	s, err := r.Text()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	s, err = r.Text()
	require.NoError(t, err)
	assert.Equal(t, "ZONA_PELIGROSA", s)

	// clean end of stream
	_, err = r.RecordTag()
	assert.ErrorIs(t, err, io.EOF)
}

func TestShortData(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte{0, 1})).Uint32()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = NewReader(bytes.NewReader(nil)).Tag()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// length says 5 bytes, only 2 follow
	_, err = NewReader(bytes.NewReader([]byte{0, 0, 0, 5, 'a', 'b'})).Text()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.ErrorIs(t, NewReader(strings.NewReader("RIDE")).Magic(), io.ErrUnexpectedEOF)
}

func TestFormatErrors(t *testing.T) {
	var fe *FormatError

	_, err := NewReader(bytes.NewReader([]byte{2})).Bool()
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, uint64(2), fe.Value)

	_, err = NewReader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff})).Text()
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "string length", fe.What)

	err = NewReader(strings.NewReader("NOTRIDES")).Magic()
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "stream header", fe.What)
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, io.ErrShortWrite
	}
	f.after--
	return len(p), nil
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(&failingWriter{after: 1})
	w.Uint32(1)
	w.Uint32(2)
	w.Text("never written")
	assert.ErrorIs(t, w.Err(), io.ErrShortWrite)
	assert.Equal(t, int64(4), w.Written())
}

func TestWriterRejectsHugeString(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Text(strings.Repeat("x", MaxStringLen+1))
	var re *RangeError
	require.ErrorAs(t, w.Err(), &re)
	assert.Equal(t, int64(MaxStringLen+1), re.Value)
	assert.Zero(t, buf.Len())
}

func TestWriterCount(t *testing.T) {
	tests := []struct {
		value int
		ok    bool
	}{
		{0, true},
		{4, true},
		{math.MaxUint32, true},
		{-1, false},
		{math.MaxUint32 + 1, false},
		{8589934594, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.Count("seats", tt.value)
		if !tt.ok {
			var re *RangeError
			require.ErrorAs(t, w.Err(), &re, "value %d", tt.value)
			assert.Equal(t, int64(tt.value), re.Value)
			assert.Zero(t, buf.Len())
			continue
		}
		require.NoError(t, w.Err())
		got, err := NewReader(&buf).Uint32()
		require.NoError(t, err)
		assert.Equal(t, uint32(tt.value), got)
	}
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "Trip", TagTrip.String())
	assert.Equal(t, "Unknown(0x7f)", Tag(0x7f).String())
}
