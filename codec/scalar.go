package codec

import (
	"math/big"
)

const (
	scalarLowMask  = 0x7f
	scalarHighMask = 0x80
)

// scalarLen returns the minimal LEB128 length for a value of bitLen
// significant bits.
func scalarLen(bitLen int) int {
	if bitLen == 0 {
		return 1
	}
	return (bitLen + 6) / 7
}

// appendScalar appends the minimal unsigned LEB128 form of v. Zero
// encodes as the single byte 0x00; every other value emits its low seven
// bits per byte, continuation bit set on all but the last.
func appendScalar(dst []byte, v uintValue) []byte {
	if v.b != nil {
		return appendScalarBig(dst, v.b)
	}
	u := v.u
	for {
		b := byte(u & scalarLowMask)
		u >>= 7
		if u != 0 {
			dst = append(dst, b|scalarHighMask)
			continue
		}
		return append(dst, b)
	}
}

func appendScalarBig(dst []byte, v *big.Int) []byte {
	// Only reached for values wider than 64 bits, so the first limb
	// always exists.
	rem := new(big.Int).Set(v)
	for {
		b := byte(rem.Bits()[0]) & scalarLowMask
		rem.Rsh(rem, 7)
		if rem.Sign() != 0 {
			dst = append(dst, b|scalarHighMask)
			continue
		}
		return append(dst, b)
	}
}

// decodeScalar reads one canonical LEB128 value of at most bits bits.
// The minimal-form rule: the terminating byte's payload may only be zero
// when it is also the first byte, since a zero payload right before
// termination is padding a shorter encoding would not carry.
func (c *Codec) decodeScalar(cur *cursor, bitSize int) (uintValue, error) {
	maxLen := scalarLen(bitSize)
	if bitSize <= 64 {
		var acc uint64
		for i := 0; ; i++ {
			b, err := cur.readByte()
			if err != nil {
				return uintValue{}, err
			}
			payload := b & scalarLowMask
			done := b&scalarHighMask == 0
			if done && payload == 0 && i > 0 {
				return uintValue{}, decodeErrorf(ErrNonCanonicalEncoding, cur.off, "superfluous trailing zero group")
			}
			if i >= maxLen {
				return uintValue{}, decodeErrorf(ErrValueOutOfRange, cur.off, "scalar exceeds %d bits", bitSize)
			}
			shift := uint(i) * 7
			if shift >= 64 || (shift > 0 && uint64(payload)<<shift>>shift != uint64(payload)) {
				return uintValue{}, decodeErrorf(ErrValueOutOfRange, cur.off, "scalar exceeds %d bits", bitSize)
			}
			acc |= uint64(payload) << shift
			if done {
				if bitSize < 64 && acc>>uint(bitSize) != 0 {
					return uintValue{}, decodeErrorf(ErrValueOutOfRange, cur.off, "scalar exceeds %d bits", bitSize)
				}
				return uintValue{u: acc}, nil
			}
		}
	}

	acc := new(big.Int)
	chunk := new(big.Int)
	for i := 0; ; i++ {
		b, err := cur.readByte()
		if err != nil {
			return uintValue{}, err
		}
		payload := b & scalarLowMask
		done := b&scalarHighMask == 0
		if done && payload == 0 && i > 0 {
			return uintValue{}, decodeErrorf(ErrNonCanonicalEncoding, cur.off, "superfluous trailing zero group")
		}
		if i >= maxLen {
			return uintValue{}, decodeErrorf(ErrValueOutOfRange, cur.off, "scalar exceeds %d bits", bitSize)
		}
		chunk.SetUint64(uint64(payload))
		chunk.Lsh(chunk, uint(i)*7)
		acc.Or(acc, chunk)
		if done {
			if acc.BitLen() > bitSize {
				return uintValue{}, decodeErrorf(ErrValueOutOfRange, cur.off, "scalar exceeds %d bits", bitSize)
			}
			if acc.BitLen() <= 64 {
				return uintValue{u: acc.Uint64()}, nil
			}
			return uintValue{b: acc}, nil
		}
	}
}

// decodeLength reads a scalar32 sequence length prefix.
func (c *Codec) decodeLength(cur *cursor) (uint64, error) {
	v, err := c.decodeScalar(cur, 32)
	if err != nil {
		return 0, err
	}
	return v.u, nil
}
