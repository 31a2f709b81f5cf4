package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateBitSize(t *testing.T) {
	for _, bits := range []int{8, 16, 64, 256, 2048, 4096} {
		require.NoError(t, ValidateBitSize(bits))
	}
	for _, bits := range []int{0, 4, 7, 9, -8, 4104} {
		require.Error(t, ValidateBitSize(bits), "%d", bits)
	}
}

func TestNewUintNewScalar(t *testing.T) {
	u, err := NewUint(64)
	require.NoError(t, err)
	require.Equal(t, 64, u.BitSize)

	_, err = NewUint(12)
	require.Error(t, err)

	s, err := NewScalar(2048)
	require.NoError(t, err)
	require.Equal(t, 2048, s.BitSize)

	_, err = NewScalar(0)
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(Bit{}, Bit{}))
	require.False(t, Equal(Bit{}, Bit{IsBool: true}))
	require.False(t, Equal(Uint{BitSize: 8}, Scalar{BitSize: 8}))
	require.False(t, Equal(Uint{BitSize: 8}, Uint{BitSize: 16}))
	require.True(t, Equal(
		Container{Fields: []Type{Uint{BitSize: 8}, Array{Elem: Bit{}}}},
		Container{Fields: []Type{Uint{BitSize: 8}, Array{Elem: Bit{}}}},
	))
	require.False(t, Equal(
		Container{Fields: []Type{Uint{BitSize: 8}}},
		Container{Fields: []Type{Uint{BitSize: 8}, Bit{}}},
	))
	require.True(t, Equal(Optional{Elem: Bytes{}}, Optional{Elem: Bytes{}}))
	require.False(t, Equal(Optional{Elem: Bytes{}}, Bytes{}))
	require.True(t, Equal(
		Tuple{Elem: FixedBytes{Length: 32}, Length: 4},
		Tuple{Elem: FixedBytes{Length: 32}, Length: 4},
	))
	require.False(t, Equal(
		Tuple{Elem: FixedBytes{Length: 32}, Length: 4},
		Tuple{Elem: FixedBytes{Length: 32}, Length: 5},
	))
}
