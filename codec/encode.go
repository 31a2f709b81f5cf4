package codec

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"sss/schema"
)

// EncodeTo encodes value against typ onto w by recursive composition:
// the output is the bare concatenation of the encodings the descriptor
// tree dictates, with no type tags, separators or offset tables. Shape
// violations (wrong arity, wrong Go type, out-of-width integers) are
// caller errors and fail before any partial write of the offending
// value.
func (c *Codec) EncodeTo(w io.Writer, typ schema.Type, value interface{}) error {
	switch t := typ.(type) {
	case schema.Bit:
		return c.encodeBit(w, value)
	case schema.Uint:
		return c.encodeUint(w, t.BitSize, value)
	case schema.Scalar:
		return c.encodeScalar(w, t.BitSize, value)
	case schema.Bytes:
		return c.encodeBytes(w, value)
	case schema.FixedBytes:
		return c.encodeFixedBytes(w, t.Length, value)
	case schema.Tuple:
		return c.encodeSequence(w, t.Elem, t.Length, false, value)
	case schema.Array:
		return c.encodeSequence(w, t.Elem, -1, true, value)
	case schema.Container:
		return c.encodeContainer(w, t, value)
	case schema.Optional:
		return c.encodeOptional(w, t, value)
	default:
		return errors.WithMessagef(ErrShapeMismatch, "unknown descriptor %T", typ)
	}
}

func (c *Codec) encodeBit(w io.Writer, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return errors.WithMessagef(ErrShapeMismatch, "cannot encode %T as a bit", value)
	}
	if b {
		return writeAll(w, []byte{0x01})
	}
	return writeAll(w, []byte{0x00})
}

func (c *Codec) encodeUint(w io.Writer, bitSize int, value interface{}) error {
	v, err := asUint(value)
	if err != nil {
		return err
	}
	if !v.fits(bitSize) {
		return errors.WithMessagef(ErrValueOutOfRange, "%d-bit value exceeds uint%d", v.bitLen(), bitSize)
	}
	buf := make([]byte, bitSize/8)
	if v.b != nil {
		// big.Int emits big-endian; reverse into the little-endian
		// fixed-width form.
		be := v.b.Bytes()
		for i, x := range be {
			buf[len(be)-1-i] = x
		}
	} else {
		u := v.u
		for i := 0; i < len(buf) && u != 0; i++ {
			buf[i] = byte(u)
			u >>= 8
		}
	}
	return writeAll(w, buf)
}

func (c *Codec) encodeScalar(w io.Writer, bitSize int, value interface{}) error {
	v, err := asUint(value)
	if err != nil {
		return err
	}
	if !v.fits(bitSize) {
		return errors.WithMessagef(ErrValueOutOfRange, "%d-bit value exceeds scalar%d", v.bitLen(), bitSize)
	}
	return writeAll(w, appendScalar(nil, v))
}

func (c *Codec) encodeBytes(w io.Writer, value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.WithMessagef(ErrShapeMismatch, "cannot encode %T as bytes", value)
	}
	if err := c.encodeLength(w, len(b)); err != nil {
		return err
	}
	return writeAll(w, b)
}

func (c *Codec) encodeFixedBytes(w io.Writer, length int, value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.WithMessagef(ErrShapeMismatch, "cannot encode %T as bytes%d", value, length)
	}
	if len(b) != length {
		return errors.WithMessagef(ErrShapeMismatch, "bytes%d value has length %d", length, len(b))
	}
	return writeAll(w, b)
}

// encodeSequence covers tuples (fixed length, no prefix) and arrays
// (dynamic, scalar32 length prefix). A []byte value is the fast path for
// byte-element sequences.
func (c *Codec) encodeSequence(w io.Writer, elem schema.Type, length int, prefixed bool, value interface{}) error {
	if b, ok := value.([]byte); ok && isByteElem(elem) {
		if !prefixed {
			if len(b) != length {
				return errors.WithMessagef(ErrShapeMismatch, "tuple of length %d given %d bytes", length, len(b))
			}
			return writeAll(w, b)
		}
		if err := c.encodeLength(w, len(b)); err != nil {
			return err
		}
		return writeAll(w, b)
	}

	items, ok := value.([]interface{})
	if !ok {
		return errors.WithMessagef(ErrShapeMismatch, "cannot encode %T as a sequence", value)
	}
	if prefixed {
		if err := c.encodeLength(w, len(items)); err != nil {
			return err
		}
	} else if len(items) != length {
		return errors.WithMessagef(ErrShapeMismatch, "tuple of length %d given %d elements", length, len(items))
	}
	for _, item := range items {
		if err := c.EncodeTo(w, elem, item); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) encodeContainer(w io.Writer, t schema.Container, value interface{}) error {
	fields, ok := value.([]interface{})
	if !ok {
		return errors.WithMessagef(ErrShapeMismatch, "cannot encode %T as a container", value)
	}
	if len(fields) != len(t.Fields) {
		return errors.WithMessagef(ErrShapeMismatch, "container of %d fields given %d values", len(t.Fields), len(fields))
	}
	for i, field := range fields {
		if err := c.EncodeTo(w, t.Fields[i], field); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) encodeOptional(w io.Writer, t schema.Optional, value interface{}) error {
	if value == nil {
		return writeAll(w, []byte{0x00})
	}
	if err := writeAll(w, []byte{0x01}); err != nil {
		return err
	}
	return c.EncodeTo(w, t.Elem, value)
}

// encodeLength writes a sequence length as its scalar32 prefix.
func (c *Codec) encodeLength(w io.Writer, length int) error {
	if length < 0 || uint64(length) > math.MaxUint32 {
		return errors.WithMessagef(ErrValueOutOfRange, "sequence length %d exceeds the scalar32 prefix", length)
	}
	return writeAll(w, appendScalar(nil, uintValue{u: uint64(length)}))
}

func isByteElem(elem schema.Type) bool {
	u, ok := elem.(schema.Uint)
	return ok && u.BitSize == 8
}

func writeAll(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
