package codec

import (
	"bytes"
	"io"

	"sss/schema"
)

const (
	// DefaultMaxArrayLen is the maximum element count the default codec
	// will decode for a dynamic-length sequence before stopping early.
	DefaultMaxArrayLen = 1 << 20

	// DefaultMaxByteLen is the maximum byte string length the default
	// codec will decode before stopping early.
	DefaultMaxByteLen = 16 * 1024 * 1024
)

// Codec encodes and decodes values against schema descriptors. The two
// ceilings bound allocation when decoding hostile input; they are
// implementation limits, distinct from the format's 2^32-1 length
// ceiling, and exceeding one fails with ErrLengthExceedsLimit before any
// allocation happens. A Codec holds no per-call state and is safe for
// concurrent use.
type Codec struct {
	// MaxArrayLen is the maximum element count of a dynamic-length
	// sequence the codec will decode.
	MaxArrayLen uint64

	// MaxByteLen is the maximum length of a dynamic byte string the
	// codec will decode.
	MaxByteLen uint64
}

var defaultCodec = &Codec{
	MaxArrayLen: DefaultMaxArrayLen,
	MaxByteLen:  DefaultMaxByteLen,
}

// Encode encodes value against typ using the default Codec.
func Encode(typ schema.Type, value interface{}) ([]byte, error) {
	return defaultCodec.Encode(typ, value)
}

// EncodeTo encodes value against typ onto w using the default Codec.
func EncodeTo(w io.Writer, typ schema.Type, value interface{}) error {
	return defaultCodec.EncodeTo(w, typ, value)
}

// Decode decodes exactly one value of type typ from data using the
// default Codec, requiring that all of data is consumed.
func Decode(typ schema.Type, data []byte) (interface{}, error) {
	return defaultCodec.Decode(typ, data)
}

// DecodeFrom decodes one value of type typ from r using the default
// Codec, returning the value and the number of bytes consumed.
func DecodeFrom(r io.Reader, typ schema.Type) (interface{}, int64, error) {
	return defaultCodec.DecodeFrom(r, typ)
}

// Encode encodes value against typ into a fresh byte slice.
func (c *Codec) Encode(typ schema.Type, value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodeTo(&buf, typ, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes exactly one value of type typ from data. Unlike
// DecodeFrom it enforces that the value's encoding spans all of data,
// failing with ErrTrailingData otherwise. Nested decodes legitimately
// stop mid-buffer; only this whole-buffer entry point imposes the check.
func (c *Codec) Decode(typ schema.Type, data []byte) (interface{}, error) {
	value, n, err := c.DecodeFrom(bytes.NewReader(data), typ)
	if err != nil {
		return nil, err
	}
	if n != int64(len(data)) {
		return nil, decodeErrorf(ErrTrailingData, n, "%d bytes remain", int64(len(data))-n)
	}
	return value, nil
}

// DecodeFrom decodes one value of type typ from r, returning the value
// and the number of bytes consumed. The source is read strictly forward,
// once, and never beyond the value's own encoding; closing a stream
// early surfaces as ErrTruncatedInput on the next read.
func (c *Codec) DecodeFrom(r io.Reader, typ schema.Type) (interface{}, int64, error) {
	cur := &cursor{r: r}
	value, err := c.decode(cur, typ)
	if err != nil {
		return nil, cur.off, err
	}
	return value, cur.off, nil
}
