package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_BasicTypes(t *testing.T) {
	tests := []struct {
		typeStr string
		exp     Type
	}{
		{"bit", Bit{}},
		{"bool", Bit{IsBool: true}},
		{"byte", Uint{BitSize: 8}},
		{"bytes", Bytes{}},
		{"bytes32", FixedBytes{Length: 32}},
		{"uint8", Uint{BitSize: 8}},
		{"uint16", Uint{BitSize: 16}},
		{"uint256", Uint{BitSize: 256}},
		{"uint2048", Uint{BitSize: 2048}},
		{"scalar8", Scalar{BitSize: 8}},
		{"scalar2048", Scalar{BitSize: 2048}},
	}
	for _, tt := range tests {
		typ, err := Parse(tt.typeStr)
		require.NoError(t, err, tt.typeStr)
		require.True(t, Equal(tt.exp, typ), tt.typeStr)
	}
}

func TestParse_CompositeTypes(t *testing.T) {
	uint8T := Uint{BitSize: 8}
	tests := []struct {
		typeStr string
		exp     Type
	}{
		{"uint8[10]", Tuple{Elem: uint8T, Length: 10}},
		{"uint8[10][5]", Tuple{Elem: Tuple{Elem: uint8T, Length: 10}, Length: 5}},
		{"uint8[10][]", Array{Elem: Tuple{Elem: uint8T, Length: 10}}},
		{"uint8[][5]", Tuple{Elem: Array{Elem: uint8T}, Length: 5}},
		{"{}", Container{}},
		{"{uint8}", Container{Fields: []Type{uint8T}}},
		{"{uint8,scalar8}", Container{Fields: []Type{uint8T, Scalar{BitSize: 8}}}},
		{"{uint8,{uint16,scalar16}}", Container{Fields: []Type{
			uint8T,
			Container{Fields: []Type{Uint{BitSize: 16}, Scalar{BitSize: 16}}},
		}}},
		{"{uint8,scalar8}[5]", Tuple{
			Elem:   Container{Fields: []Type{uint8T, Scalar{BitSize: 8}}},
			Length: 5,
		}},
		{"uint8?", Optional{Elem: uint8T}},
		{"uint8?[]", Array{Elem: Optional{Elem: uint8T}}},
		{"uint8[]?", Optional{Elem: Array{Elem: uint8T}}},
		{"bytes32[]", Array{Elem: FixedBytes{Length: 32}}},
	}
	for _, tt := range tests {
		typ, err := Parse(tt.typeStr)
		require.NoError(t, err, tt.typeStr)
		require.True(t, Equal(tt.exp, typ), tt.typeStr)
	}
}

func TestParse_StringRoundTrip(t *testing.T) {
	typeStrs := []string{
		"bit",
		"bool",
		"uint64",
		"scalar2048",
		"bytes",
		"bytes32",
		"uint8[10][]",
		"{uint8,{uint16,scalar16}[3],bytes?}",
		"{}",
	}
	for _, s := range typeStrs {
		typ, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, s, typ.String())

		again, err := Parse(typ.String())
		require.NoError(t, err, s)
		require.True(t, Equal(typ, again), s)
	}
}

func TestParse_Errors(t *testing.T) {
	bad := []string{
		"",
		"uint",
		"uint7",
		"uint0",
		"uint8192",
		"int8",
		"uint8[",
		"uint8[0]",
		"uint8[]x",
		"{uint8",
		"{uint8;bit}",
		"bytes[3",
		"uint8 ",
	}
	for _, s := range bad {
		_, err := Parse(s)
		require.Error(t, err, "%q", s)
	}
}
