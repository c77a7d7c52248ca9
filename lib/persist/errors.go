package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist/internal"
)

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

type ErrCode uint8

const (
	ErrCIO          ErrCode = iota + 1 // 1: the file could not be opened, read, written or flushed.
	ErrCNotFound                       // 2: the input file does not exist (a kind of ErrCIO).
	ErrCDecode                         // 3: the data is readable but not a known record shape.
	ErrCNotOpen                        // 4: the channel used by the operation is not open.
	ErrCUnsupported                    // 5: the value passed to Write has no record shape.
)

func (c ErrCode) String() string {
	switch c {
	case ErrCIO:
		return "IOFailure"
	case ErrCNotFound:
		return "NotFound"
	case ErrCDecode:
		return "DecodeFailure"
	case ErrCNotOpen:
		return "NotOpenFailure"
	case ErrCUnsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Sentinels for errors.Is
var (
	ErrIO          = &Error{Code: ErrCIO}
	ErrNotFound    = &Error{Code: ErrCNotFound}
	ErrDecode      = &Error{Code: ErrCDecode}
	ErrNotOpen     = &Error{Code: ErrCNotOpen}
	ErrUnsupported = &Error{Code: ErrCUnsupported}
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is returned by every failing operation of this package
type Error struct {
	Code  ErrCode // kind of failure
	Op    string  // operation that failed, e.g. "read"
	Name  string  // file involved, if any
	Msg   string  // what went wrong
	Value uint64  // offending tag or discriminator of a decode failure
	Err   error   // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("persist")
	if e.Op != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Op)
	}
	if e.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Name)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Code.String())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Err != nil && (e.Code != ErrCDecode || e.Msg == "") {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same code.
// A NotFound error is also an IO error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code || (t.Code == ErrCIO && e.Code == ErrCNotFound)
}

// --------------------------------------------------------------------------
// Constructors
// --------------------------------------------------------------------------

func newIOError(op, name string, err error) *Error {
	code := ErrCIO
	if errors.Is(err, fs.ErrNotExist) {
		code = ErrCNotFound
	}
	ioFailures.Inc()
	return &Error{Code: code, Op: op, Name: name, Err: err}
}

func newNotOpenError(op, channel string) *Error {
	return &Error{Code: ErrCNotOpen, Op: op, Msg: channel + " is not open"}
}

func newUnsupportedError(obj any) *Error {
	return &Error{Code: ErrCUnsupported, Op: "write", Msg: fmt.Sprintf("cannot write a value of type %T", obj)}
}

func newUnsupportedValueError(obj any, err error) *Error {
	return &Error{Code: ErrCUnsupported, Op: "write", Msg: fmt.Sprintf("cannot write %T", obj), Err: err}
}

func newDecodeError(op, name, msg string, value uint64, err error) *Error {
	decodeFailures.Inc()
	return &Error{Code: ErrCDecode, Op: op, Name: name, Msg: msg, Value: value, Err: err}
}

// readError classifies an error raised while decoding from name
func readError(op, name string, err error) *Error {
	var fe *internal.FormatError
	if errors.As(err, &fe) {
		return newDecodeError(op, name, fe.Error(), fe.Value, fe)
	}
	return newIOError(op, name, err)
}
