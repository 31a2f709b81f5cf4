package codec

import (
	"bytes"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// uintValue is the normalized form of an encode-side integer. Values of
// 64 bits or fewer live in u; wider ones in b.
type uintValue struct {
	u uint64
	b *big.Int
}

// asUint normalizes the Go representations accepted for uint and scalar
// values. Signed kinds are accepted for literal convenience but must be
// non-negative.
func asUint(v interface{}) (uintValue, error) {
	switch val := v.(type) {
	case uint64:
		return uintValue{u: val}, nil
	case uint32:
		return uintValue{u: uint64(val)}, nil
	case uint16:
		return uintValue{u: uint64(val)}, nil
	case uint8:
		return uintValue{u: uint64(val)}, nil
	case uint:
		return uintValue{u: uint64(val)}, nil
	case int64:
		if val < 0 {
			return uintValue{}, errors.WithMessage(ErrValueOutOfRange, "negative integer")
		}
		return uintValue{u: uint64(val)}, nil
	case int:
		if val < 0 {
			return uintValue{}, errors.WithMessage(ErrValueOutOfRange, "negative integer")
		}
		return uintValue{u: uint64(val)}, nil
	case *big.Int:
		if val.Sign() < 0 {
			return uintValue{}, errors.WithMessage(ErrValueOutOfRange, "negative integer")
		}
		if val.BitLen() <= 64 {
			return uintValue{u: val.Uint64()}, nil
		}
		return uintValue{b: val}, nil
	default:
		return uintValue{}, errors.WithMessagef(ErrShapeMismatch, "cannot encode %T as an unsigned integer", v)
	}
}

// fits reports whether the value needs no more than bits bits.
func (v uintValue) fits(bits int) bool {
	if v.b != nil {
		return v.b.BitLen() <= bits
	}
	if bits >= 64 {
		return true
	}
	return v.u>>uint(bits) == 0
}

func (v uintValue) bitLen() int {
	if v.b != nil {
		return v.b.BitLen()
	}
	return bits.Len64(v.u)
}

// ValueEqual reports deep equality of two decoded or encodable value
// trees, normalizing the accepted integer representations so that
// uint64(5), int(5) and big.NewInt(5) compare equal.
func ValueEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		an, err := asUint(a)
		if err != nil {
			return false
		}
		bn, err := asUint(b)
		if err != nil {
			return false
		}
		if an.b != nil || bn.b != nil {
			return an.big().Cmp(bn.big()) == 0
		}
		return an.u == bn.u
	}
}

func (v uintValue) big() *big.Int {
	if v.b != nil {
		return v.b
	}
	return new(big.Int).SetUint64(v.u)
}
