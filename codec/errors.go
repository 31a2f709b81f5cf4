package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned by Encode and Decode. Decode failures wrap these
// in a *DecodeError carrying the byte offset; use errors.Cause to match
// against the kind.
var (
	// ErrValueOutOfRange reports an integer or length outside the
	// declared bit width or domain bound.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrShapeMismatch reports an encode-time value whose arity or Go
	// type does not match the descriptor.
	ErrShapeMismatch = errors.New("value shape does not match type")

	// ErrTruncatedInput reports a byte source that ended before a
	// value's encoding completed.
	ErrTruncatedInput = errors.New("input truncated")

	// ErrNonCanonicalEncoding reports a scalar encoded with more bytes
	// than its minimal LEB128 form.
	ErrNonCanonicalEncoding = errors.New("non-canonical scalar encoding")

	// ErrInvalidBitValue reports a bit byte outside {0x00, 0x01}.
	ErrInvalidBitValue = errors.New("invalid bit value")

	// ErrLengthMismatch reports a fixed-length byte string shorter than
	// its declared length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrLengthExceedsLimit reports a declared dynamic length beyond the
	// codec's safety ceiling.
	ErrLengthExceedsLimit = errors.New("length exceeds limit")

	// ErrTrailingData reports bytes left over after a whole-buffer
	// decode.
	ErrTrailingData = errors.New("trailing data after decode")
)

// DecodeError is a decode failure annotated with the byte offset at
// which it was detected. Its Cause is one of the kind sentinels above,
// so errors.Cause(err) == ErrTruncatedInput style checks work.
type DecodeError struct {
	Kind   error
	Offset int64
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Cause implements the pkg/errors causer interface.
func (e *DecodeError) Cause() error {
	return e.Kind
}

func decodeErrorf(kind error, offset int64, format string, args ...interface{}) error {
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}
