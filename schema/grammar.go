package schema

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parse parses a type string into a descriptor. The language follows the
// canonical String() form of each descriptor:
//
//	bit, bool
//	uintN, scalarN        N a multiple of 8 in [8, 4096]
//	byte                  alias for uint8
//	bytes                 dynamic byte string
//	bytesN                fixed byte string of N bytes
//	{T0,T1,...}, {}       containers
//	T[N]                  fixed-length tuple of T
//	T[]                   dynamic-length array of T
//	T?                    optional T
//
// Postfix modifiers bind left to right: uint8[10][] is an array of
// 10-tuples, uint8[]? is an optional array.
func Parse(s string) (Type, error) {
	p := &parser{src: s}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return typ, nil
}

// MustParse is Parse for statically-known type strings; it panics on
// malformed input.
func MustParse(s string) Type {
	typ, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return typ
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	msg := errors.Errorf(format, args...)
	return errors.WithMessagef(msg, "parsing type %q at offset %d", p.src, p.pos)
}

func (p *parser) parseType() (Type, error) {
	var typ Type
	var err error
	if p.peek() == '{' {
		typ, err = p.parseContainer()
	} else {
		typ, err = p.parseBasic()
	}
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(typ)
}

func (p *parser) parseContainer() (Type, error) {
	p.pos++ // consume '{'
	var fields []Type
	if p.peek() == '}' {
		p.pos++
		return Container{}, nil
	}
	for {
		field, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return Container{Fields: fields}, nil
		default:
			return nil, p.errorf("expected ',' or '}' in container")
		}
	}
}

func (p *parser) parseBasic() (Type, error) {
	name := p.takeLetters()
	switch name {
	case "bit":
		return Bit{}, nil
	case "bool":
		return Bit{IsBool: true}, nil
	case "byte":
		return Uint{BitSize: 8}, nil
	case "uint", "scalar":
		bits, err := p.takeInt()
		if err != nil {
			return nil, p.errorf("%s needs a bit size", name)
		}
		if err := ValidateBitSize(bits); err != nil {
			return nil, p.errorf("%s", err)
		}
		if name == "uint" {
			return Uint{BitSize: bits}, nil
		}
		return Scalar{BitSize: bits}, nil
	case "bytes":
		if isDigit(p.peek()) {
			n, err := p.takeInt()
			if err != nil {
				return nil, err
			}
			return FixedBytes{Length: n}, nil
		}
		return Bytes{}, nil
	case "":
		return nil, p.errorf("expected a type name")
	default:
		return nil, p.errorf("unknown type name %q", name)
	}
}

func (p *parser) parsePostfix(typ Type) (Type, error) {
	for {
		switch p.peek() {
		case '[':
			p.pos++
			if p.peek() == ']' {
				p.pos++
				typ = Array{Elem: typ}
				continue
			}
			n, err := p.takeInt()
			if err != nil {
				return nil, p.errorf("expected a tuple length")
			}
			if p.peek() != ']' {
				return nil, p.errorf("expected ']' after tuple length")
			}
			p.pos++
			typ = Tuple{Elem: typ, Length: n}
		case '?':
			p.pos++
			typ = Optional{Elem: typ}
		default:
			return typ, nil
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) takeLetters() string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) takeInt() (int, error) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("expected digits")
	}
	if p.src[start] == '0' {
		return 0, p.errorf("lengths may not have leading zeros")
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errorf("bad number: %s", err)
	}
	return n, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
