package cli

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"sss/schema"
)

// maxJSONNumber is the largest integer JSON represents exactly; anything
// wider renders as a decimal string instead.
const maxJSONNumber = 1<<53 - 1

// ParseValue converts a JSON literal into the value tree the codec
// expects for typ. Integers may be JSON numbers or decimal/0x-hex
// strings; byte strings are 0x-hex strings; optionals are null or the
// inner literal.
func ParseValue(typ schema.Type, jsonLiteral []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonLiteral))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "error parsing value literal")
	}
	return convertValue(typ, raw)
}

func convertValue(typ schema.Type, raw interface{}) (interface{}, error) {
	switch t := typ.(type) {
	case schema.Bit:
		b, ok := raw.(bool)
		if !ok {
			return nil, errors.Errorf("%s wants a JSON bool, got %T", typ, raw)
		}
		return b, nil
	case schema.Uint:
		return convertInteger(typ, raw)
	case schema.Scalar:
		return convertInteger(typ, raw)
	case schema.Bytes:
		return convertByteString(typ, raw)
	case schema.FixedBytes:
		return convertByteString(typ, raw)
	case schema.Tuple:
		return convertSequence(t.Elem, typ, raw)
	case schema.Array:
		return convertSequence(t.Elem, typ, raw)
	case schema.Container:
		items, ok := raw.([]interface{})
		if !ok {
			return nil, errors.Errorf("%s wants a JSON array, got %T", typ, raw)
		}
		if len(items) != len(t.Fields) {
			return nil, errors.Errorf("%s wants %d fields, got %d", typ, len(t.Fields), len(items))
		}
		fields := make([]interface{}, len(items))
		for i, item := range items {
			field, err := convertValue(t.Fields[i], item)
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}
		return fields, nil
	case schema.Optional:
		if raw == nil {
			return nil, nil
		}
		return convertValue(t.Elem, raw)
	default:
		return nil, errors.Errorf("unknown descriptor %T", typ)
	}
}

func convertInteger(typ schema.Type, raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case json.Number:
		return parseIntegerString(typ, v.String())
	case string:
		return parseIntegerString(typ, v)
	default:
		return nil, errors.Errorf("%s wants a JSON number or string, got %T", typ, raw)
	}
}

func parseIntegerString(typ schema.Type, s string) (interface{}, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || n.Sign() < 0 {
		return nil, errors.Errorf("%s wants an unsigned integer, got %q", typ, s)
	}
	if n.BitLen() <= 64 {
		return n.Uint64(), nil
	}
	return n, nil
}

func convertByteString(typ schema.Type, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, errors.Errorf("%s wants a 0x-hex JSON string, got %T", typ, raw)
	}
	if !strings.HasPrefix(s, "0x") {
		return nil, errors.Errorf("%s wants a 0x-hex JSON string, got %q", typ, s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, errors.Wrapf(err, "bad hex in %s value", typ)
	}
	return data, nil
}

func convertSequence(elem schema.Type, typ schema.Type, raw interface{}) (interface{}, error) {
	// byte-element sequences read as hex strings, everything else as
	// JSON arrays
	if u, ok := elem.(schema.Uint); ok && u.BitSize == 8 {
		if _, isStr := raw.(string); isStr {
			return convertByteString(typ, raw)
		}
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Errorf("%s wants a JSON array, got %T", typ, raw)
	}
	converted := make([]interface{}, len(items))
	for i, item := range items {
		c, err := convertValue(elem, item)
		if err != nil {
			return nil, err
		}
		converted[i] = c
	}
	return converted, nil
}

// RenderValue converts a decoded value tree into its JSON literal form,
// inverse to ParseValue.
func RenderValue(typ schema.Type, value interface{}) ([]byte, error) {
	jsonValue, err := jsonify(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonValue)
}

func jsonify(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case uint64:
		if v > maxJSONNumber {
			return new(big.Int).SetUint64(v).String(), nil
		}
		return v, nil
	case *big.Int:
		if v.BitLen() <= 53 {
			return v.Uint64(), nil
		}
		return v.String(), nil
	case []byte:
		return "0x" + hex.EncodeToString(v), nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			c, err := jsonify(item)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return nil, errors.Errorf("cannot render %T", value)
	}
}
