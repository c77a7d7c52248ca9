// Package internal contains the wire primitives of the ridesnap binary stream:
// the stream magic, the record tags and a big endian Writer/Reader pair for
// the scalar field types (u8, bool, u32, i64, f64, length prefixed strings).
//
// The Writer keeps the first error it encounters and turns every following
// call into a no-op, so encoders can write a whole record and check Err once.
// The Reader returns errors per call; running out of data inside a record is
// reported as io.ErrUnexpectedEOF, malformed values as *FormatError.
package internal
