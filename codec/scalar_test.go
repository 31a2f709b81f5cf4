package codec

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"math/bits"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"sss/schema"
	"sss/testutil/testflags"
)

func mustHex(t *testing.T, s string) []byte {
	data, err := hex.DecodeString(s)
	require.NoError(t, err)
	return data
}

func TestScalar_Encoding(t *testing.T) {
	tests := []struct {
		bitSize int
		value   interface{}
		expHex  string
	}{
		{8, uint64(0), "00"},
		{16, uint64(0), "00"},
		{8, uint64(1), "01"},
		{8, uint64(127), "7f"},
		{8, uint64(128), "8001"},
		{8, uint64(255), "ff01"},
		{16, uint64(65535), "ffff03"},
		{64, uint64(300), "ac02"},
		{32, uint64(1 << 21), "80808001"},
	}
	for _, tt := range tests {
		typ := schema.Scalar{BitSize: tt.bitSize}
		data, err := Encode(typ, tt.value)
		require.NoError(t, err)
		require.Equal(t, tt.expHex, hex.EncodeToString(data))

		decoded, err := Decode(typ, data)
		require.NoError(t, err)
		require.True(t, ValueEqual(tt.value, decoded))
	}
}

func TestScalar_MinimalLength(t *testing.T) {
	// A canonical encoding spans exactly ceil(bitlen/7) bytes, and
	// re-encoding the decoded value reproduces it byte for byte.
	typ := schema.Scalar{BitSize: 64}
	for bitLen := 1; bitLen <= 64; bitLen++ {
		v := uint64(1) << uint(bitLen-1)
		data, err := Encode(typ, v)
		require.NoError(t, err)
		require.Equal(t, (bitLen+6)/7, len(data), "bitlen %d", bitLen)

		decoded, err := Decode(typ, data)
		require.NoError(t, err)
		again, err := Encode(typ, decoded)
		require.NoError(t, err)
		require.Equal(t, data, again)
	}
}

func TestScalar_BigValues(t *testing.T) {
	typ := schema.Scalar{BitSize: 2048}
	v := new(big.Int).Lsh(big.NewInt(1), 2047)
	v.Sub(v, big.NewInt(1))

	data, err := Encode(typ, v)
	require.NoError(t, err)
	require.Equal(t, (2047+6)/7, len(data))

	decoded, err := Decode(typ, data)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(decoded.(*big.Int)))

	// One bit wider must be rejected on encode.
	v = new(big.Int).Lsh(big.NewInt(1), 2048)
	_, err = Encode(typ, v)
	require.Error(t, err)
	require.Equal(t, ErrValueOutOfRange, errors.Cause(err))
}

func TestScalar_Exhaustive16(t *testing.T) {
	testflags.SlowTest(t)
	typ := schema.Scalar{BitSize: 16}
	for v := uint64(0); v <= 0xffff; v++ {
		data, err := Encode(typ, v)
		require.NoError(t, err)
		expLen := 1
		if v != 0 {
			expLen = (bits.Len64(v) + 6) / 7
		}
		require.Equal(t, expLen, len(data), "value %d", v)

		decoded, err := Decode(typ, data)
		require.NoError(t, err)
		require.Equal(t, v, decoded, "value %d", v)

		// the padded form of the same value must be rejected
		padded := append(append([]byte{}, data[:len(data)-1]...), data[len(data)-1]|scalarHighMask, 0x00)
		_, err = Decode(typ, padded)
		require.Error(t, err, "value %d", v)
		require.Equal(t, ErrNonCanonicalEncoding, errors.Cause(err), "value %d", v)
	}
}

func TestScalar_RejectsNonCanonical(t *testing.T) {
	typ := schema.Scalar{BitSize: 64}

	// 300 encodes as ac02; ac8200 carries a spurious zero group before
	// the terminator and must be rejected even though it denotes 300.
	_, err := Decode(typ, mustHex(t, "ac8200"))
	require.Error(t, err)
	require.Equal(t, ErrNonCanonicalEncoding, errors.Cause(err))

	// Same for zero: 00 is canonical, 8000 is not.
	_, err = Decode(typ, mustHex(t, "8000"))
	require.Error(t, err)
	require.Equal(t, ErrNonCanonicalEncoding, errors.Cause(err))

	_, err = Decode(schema.Scalar{BitSize: 2048}, mustHex(t, "8000"))
	require.Error(t, err)
	require.Equal(t, ErrNonCanonicalEncoding, errors.Cause(err))
}

func TestScalar_RejectsOutOfRange(t *testing.T) {
	// ff03 denotes 511, one bit too wide for scalar8.
	_, err := Decode(schema.Scalar{BitSize: 8}, mustHex(t, "ff03"))
	require.Error(t, err)
	require.Equal(t, ErrValueOutOfRange, errors.Cause(err))

	// Five continuation groups overflow scalar8's two-byte maximum
	// before the terminator is ever seen.
	_, err = Decode(schema.Scalar{BitSize: 8}, mustHex(t, "ffffff7f"))
	require.Error(t, err)
	require.Equal(t, ErrValueOutOfRange, errors.Cause(err))

	// 2^64 exceeds scalar64.
	_, err = Decode(schema.Scalar{BitSize: 64}, mustHex(t, "80808080808080808002"))
	require.Error(t, err)
	require.Equal(t, ErrValueOutOfRange, errors.Cause(err))
}

func TestScalar_Truncation(t *testing.T) {
	typ := schema.Scalar{BitSize: 64}
	full := mustHex(t, "ac02")
	for i := 0; i < len(full); i++ {
		_, err := Decode(typ, full[:i])
		require.Error(t, err)
		require.Equal(t, ErrTruncatedInput, errors.Cause(err))
	}
}

func TestScalar_DecodeErrorOffset(t *testing.T) {
	// Two valid bytes then a truncated scalar: the reported offset
	// names the failure position, not zero.
	typ := schema.Container{Fields: []schema.Type{
		schema.Uint{BitSize: 16},
		schema.Scalar{BitSize: 64},
	}}
	_, _, err := DecodeFrom(bytes.NewReader(mustHex(t, "012280")), typ)
	require.Error(t, err)
	require.Equal(t, ErrTruncatedInput, errors.Cause(err))
	de, ok := err.(*DecodeError)
	require.True(t, ok)
	require.EqualValues(t, 3, de.Offset)
}
