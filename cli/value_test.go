package cli

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"sss/codec"
	"sss/schema"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		typeStr string
		literal string
		exp     interface{}
	}{
		{"bit", "true", true},
		{"uint8", "5", uint64(5)},
		{"uint64", `"300"`, uint64(300)},
		{"scalar256", `"0xffffffffffffffffff"`, new(big.Int).SetBytes([]byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		})},
		{"bytes", `"0xdeadbeef"`, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"uint8[]", `"0x0102"`, []byte{1, 2}},
		{"uint8[]", "[1,2]", []interface{}{uint64(1), uint64(2)}},
		{"{uint8,bit}", "[5,true]", []interface{}{uint64(5), true}},
		{"uint16?", "null", nil},
		{"uint16?", "7", uint64(7)},
	}
	for _, tt := range tests {
		typ := schema.MustParse(tt.typeStr)
		v, err := ParseValue(typ, []byte(tt.literal))
		require.NoError(t, err, tt.typeStr)
		require.True(t, codec.ValueEqual(tt.exp, v), "%s %s", tt.typeStr, tt.literal)
	}
}

func TestParseValue_Errors(t *testing.T) {
	tests := []struct {
		typeStr string
		literal string
	}{
		{"bit", "1"},
		{"uint8", "true"},
		{"uint8", `"-5"`},
		{"bytes", `"deadbeef"`},
		{"{uint8,bit}", "[5]"},
		{"uint8[]", "5"},
	}
	for _, tt := range tests {
		typ := schema.MustParse(tt.typeStr)
		_, err := ParseValue(typ, []byte(tt.literal))
		require.Error(t, err, "%s %s", tt.typeStr, tt.literal)
	}
}

func TestRenderValue_RoundTrip(t *testing.T) {
	tests := []struct {
		typeStr string
		literal string
		expJSON string
	}{
		{"bit", "true", "true"},
		{"uint64", "300", "300"},
		{"uint64", `"18446744073709551615"`, `"18446744073709551615"`},
		{"bytes", `"0xdeadbeef"`, `"0xdeadbeef"`},
		{"{uint8,bit}", "[5,true]", "[5,true]"},
		{"uint16?", "null", "null"},
	}
	for _, tt := range tests {
		typ := schema.MustParse(tt.typeStr)
		v, err := ParseValue(typ, []byte(tt.literal))
		require.NoError(t, err, tt.typeStr)

		// through the codec and back, then to JSON
		data, err := codec.Encode(typ, v)
		require.NoError(t, err, tt.typeStr)
		decoded, err := codec.Decode(typ, data)
		require.NoError(t, err, tt.typeStr)

		rendered, err := RenderValue(typ, decoded)
		require.NoError(t, err, tt.typeStr)
		require.Equal(t, tt.expJSON, string(rendered), tt.typeStr)
	}
}
