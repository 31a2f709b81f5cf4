package codec

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"sss/schema"
)

// cursor is the transient state of one in-progress decode: the source
// and the count of bytes consumed so far. It is owned by a single decode
// call and moves strictly forward.
type cursor struct {
	r   io.Reader
	off int64
	one [1]byte
}

func (cur *cursor) readByte() (byte, error) {
	if err := cur.readFull(cur.one[:]); err != nil {
		return 0, err
	}
	return cur.one[0], nil
}

func (cur *cursor) readFull(buf []byte) error {
	n, err := io.ReadFull(cur.r, buf)
	cur.off += int64(n)
	if err != nil {
		return decodeErrorf(ErrTruncatedInput, cur.off, "needed %d bytes, got %d", len(buf), n)
	}
	return nil
}

// decode dispatches on the descriptor variant. Every variant is
// self-delimiting: it consumes exactly its own encoding and no more, so
// a field after a variable-length field is located purely by the cursor
// having advanced past the earlier field's bytes.
func (c *Codec) decode(cur *cursor, typ schema.Type) (interface{}, error) {
	switch t := typ.(type) {
	case schema.Bit:
		return c.decodeBit(cur)
	case schema.Uint:
		return c.decodeUint(cur, t.BitSize)
	case schema.Scalar:
		v, err := c.decodeScalar(cur, t.BitSize)
		if err != nil {
			return nil, err
		}
		if v.b != nil {
			return v.b, nil
		}
		return v.u, nil
	case schema.Bytes:
		return c.decodeBytes(cur)
	case schema.FixedBytes:
		return c.decodeFixedBytes(cur, t.Length)
	case schema.Tuple:
		return c.decodeSequence(cur, t.Elem, uint64(t.Length))
	case schema.Array:
		return c.decodeArray(cur, t.Elem)
	case schema.Container:
		return c.decodeContainer(cur, t)
	case schema.Optional:
		return c.decodeOptional(cur, t)
	default:
		return nil, errors.Errorf("unknown descriptor %T", typ)
	}
}

func (c *Codec) decodeBit(cur *cursor) (interface{}, error) {
	b, err := cur.readByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return nil, decodeErrorf(ErrInvalidBitValue, cur.off, "0x%02x", b)
	}
}

// decodeUint reads bitSize/8 little-endian bytes. Widths of 64 bits or
// fewer come back as uint64, wider ones as *big.Int.
func (c *Codec) decodeUint(cur *cursor, bitSize int) (interface{}, error) {
	buf := make([]byte, bitSize/8)
	if err := cur.readFull(buf); err != nil {
		return nil, err
	}
	if bitSize <= 64 {
		var u uint64
		for i := len(buf) - 1; i >= 0; i-- {
			u = u<<8 | uint64(buf[i])
		}
		return u, nil
	}
	// reverse in place into big-endian for SetBytes
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return new(big.Int).SetBytes(buf), nil
}

func (c *Codec) decodeBytes(cur *cursor) (interface{}, error) {
	l, err := c.decodeLength(cur)
	if err != nil {
		return nil, err
	}
	if l > c.MaxByteLen {
		return nil, decodeErrorf(ErrLengthExceedsLimit, cur.off, "byte string length %d exceeds ceiling %d", l, c.MaxByteLen)
	}
	buf := make([]byte, l)
	if err := cur.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// decodeFixedBytes reads exactly length raw bytes. A short source is a
// length mismatch, not a truncation: the schema promised a fixed size.
func (c *Codec) decodeFixedBytes(cur *cursor, length int) (interface{}, error) {
	buf := make([]byte, length)
	if err := cur.readFull(buf); err != nil {
		cause := err.(*DecodeError)
		return nil, decodeErrorf(ErrLengthMismatch, cur.off, "bytes%d: %s", length, cause.Detail)
	}
	return buf, nil
}

func (c *Codec) decodeSequence(cur *cursor, elem schema.Type, length uint64) (interface{}, error) {
	if isByteElem(elem) {
		buf := make([]byte, length)
		if err := cur.readFull(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	items := make([]interface{}, 0, length)
	for i := uint64(0); i < length; i++ {
		item, err := c.decode(cur, elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Codec) decodeArray(cur *cursor, elem schema.Type) (interface{}, error) {
	l, err := c.decodeLength(cur)
	if err != nil {
		return nil, err
	}
	limit := c.MaxArrayLen
	if isByteElem(elem) {
		limit = c.MaxByteLen
	}
	if l > limit {
		return nil, decodeErrorf(ErrLengthExceedsLimit, cur.off, "sequence length %d exceeds ceiling %d", l, limit)
	}
	return c.decodeSequence(cur, elem, l)
}

func (c *Codec) decodeContainer(cur *cursor, t schema.Container) (interface{}, error) {
	fields := make([]interface{}, 0, len(t.Fields))
	for _, fieldType := range t.Fields {
		field, err := c.decode(cur, fieldType)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (c *Codec) decodeOptional(cur *cursor, t schema.Optional) (interface{}, error) {
	present, err := c.decodeBit(cur)
	if err != nil {
		return nil, err
	}
	if !present.(bool) {
		return nil, nil
	}
	return c.decode(cur, t.Elem)
}
