package schema

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MinBitSize is the smallest legal width for uint and scalar types.
	MinBitSize = 8

	// MaxBitSize is the largest legal width for uint and scalar types.
	// Wide enough for 2048-bit bloom-filter fields.
	MaxBitSize = 4096
)

// Type describes the shape of a value on the wire. Types are immutable
// after construction and safe to share between any number of concurrent
// encodes and decodes. The set of types is closed: every Type is one of
// Bit, Uint, Scalar, Bytes, FixedBytes, Tuple, Array, Container or
// Optional.
type Type interface {
	fmt.Stringer

	sealed()
}

// ValidateBitSize returns an error unless bits is a multiple of eight
// within [MinBitSize, MaxBitSize].
func ValidateBitSize(bits int) error {
	if bits%8 != 0 {
		return errors.Errorf("bit size %d is not a multiple of 8", bits)
	}
	if bits < MinBitSize || bits > MaxBitSize {
		return errors.Errorf("bit size %d outside [%d, %d]", bits, MinBitSize, MaxBitSize)
	}
	return nil
}

// Bit is a single boolean encoded as one byte. IsBool only changes how
// the type prints; bit and bool share a wire form.
type Bit struct {
	IsBool bool
}

func (t Bit) sealed() {}

func (t Bit) String() string {
	if t.IsBool {
		return "bool"
	}
	return "bit"
}

// Uint is a fixed-width little-endian unsigned integer of BitSize bits.
type Uint struct {
	BitSize int
}

// NewUint returns a Uint descriptor, validating the width.
func NewUint(bits int) (Uint, error) {
	if err := ValidateBitSize(bits); err != nil {
		return Uint{}, err
	}
	return Uint{BitSize: bits}, nil
}

func (t Uint) sealed() {}

func (t Uint) String() string {
	return fmt.Sprintf("uint%d", t.BitSize)
}

// Scalar is an unsigned integer of at most BitSize bits encoded as
// minimal-length unsigned LEB128.
type Scalar struct {
	BitSize int
}

// NewScalar returns a Scalar descriptor, validating the width.
func NewScalar(bits int) (Scalar, error) {
	if err := ValidateBitSize(bits); err != nil {
		return Scalar{}, err
	}
	return Scalar{BitSize: bits}, nil
}

func (t Scalar) sealed() {}

func (t Scalar) String() string {
	return fmt.Sprintf("scalar%d", t.BitSize)
}

// Bytes is a dynamic-length byte string: a scalar32 length prefix
// followed by that many raw bytes.
type Bytes struct{}

func (t Bytes) sealed() {}

func (t Bytes) String() string {
	return "bytes"
}

// FixedBytes is a byte string of exactly Length raw bytes, no prefix.
type FixedBytes struct {
	Length int
}

func (t FixedBytes) sealed() {}

func (t FixedBytes) String() string {
	return fmt.Sprintf("bytes%d", t.Length)
}

// Tuple is a fixed-length homogeneous sequence. The length lives in the
// schema, never in the encoding.
type Tuple struct {
	Elem   Type
	Length int
}

func (t Tuple) sealed() {}

func (t Tuple) String() string {
	return fmt.Sprintf("%s[%d]", t.Elem, t.Length)
}

// Array is a dynamic-length homogeneous sequence: a scalar32 element
// count followed by that many element encodings.
type Array struct {
	Elem Type
}

func (t Array) sealed() {}

func (t Array) String() string {
	return fmt.Sprintf("%s[]", t.Elem)
}

// Container is a fixed-arity heterogeneous record. Field count and field
// types are schema knowledge; the encoding is the bare concatenation of
// the field encodings in declared order.
type Container struct {
	Fields []Type
}

func (t Container) sealed() {}

func (t Container) String() string {
	strs := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		strs[i] = f.String()
	}
	return "{" + strings.Join(strs, ",") + "}"
}

// Optional wraps a type with a one-byte presence marker.
type Optional struct {
	Elem Type
}

func (t Optional) sealed() {}

func (t Optional) String() string {
	return fmt.Sprintf("%s?", t.Elem)
}

// Equal reports whether two descriptors describe the same wire shape.
// Bit and bool compare equal in name only, not in kind.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Bit:
		bt, ok := b.(Bit)
		return ok && at.IsBool == bt.IsBool
	case Uint:
		bt, ok := b.(Uint)
		return ok && at.BitSize == bt.BitSize
	case Scalar:
		bt, ok := b.(Scalar)
		return ok && at.BitSize == bt.BitSize
	case Bytes:
		_, ok := b.(Bytes)
		return ok
	case FixedBytes:
		bt, ok := b.(FixedBytes)
		return ok && at.Length == bt.Length
	case Tuple:
		bt, ok := b.(Tuple)
		return ok && at.Length == bt.Length && Equal(at.Elem, bt.Elem)
	case Array:
		bt, ok := b.(Array)
		return ok && Equal(at.Elem, bt.Elem)
	case Container:
		bt, ok := b.(Container)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}
		for i := range at.Fields {
			if !Equal(at.Fields[i], bt.Fields[i]) {
				return false
			}
		}
		return true
	case Optional:
		bt, ok := b.(Optional)
		return ok && Equal(at.Elem, bt.Elem)
	default:
		return false
	}
}
