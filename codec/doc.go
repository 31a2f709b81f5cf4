/*
Package codec implements the Streamable Simple Serialize (SSS) byte
format: a schema-driven encoding with no embedded type tags, no offset
tables and no padding, built for compact streamed transport. Both ends
know the schema out-of-band as a schema.Type descriptor tree; the wire
carries nothing but the values.

Wire forms:

	- bit, bool: one byte, 0x00 or 0x01.
	- uintN: N/8 little-endian bytes.
	- scalarN: minimal-length unsigned LEB128, 7 data bits and one
	  continuation bit per byte. Non-minimal forms are rejected on
	  decode.
	- bytesN: exactly N raw bytes.
	- bytes, T[]: a scalar32 length prefix followed by that many
	  element encodings.
	- T[N]: exactly N concatenated element encodings, no prefix.
	- {T0,...,Tk}: the concatenated field encodings in declared order,
	  no prefix, no separators.
	- T?: a one-byte presence marker, then the inner encoding when
	  present.

Every form is self-delimiting, so a decoder consumes a stream strictly
forward with no lookahead or backpatching; the price is that nothing can
be located inside an encoding without decoding everything before it.

To encode a value against a type:

	typ := schema.MustParse("{uint8,uint64[]}")
	data, err := codec.Encode(typ, []interface{}{
		uint64(5),
		[]interface{}{uint64(1), uint64(2)},
	})

To decode it back:

	value, err := codec.Decode(typ, data)

Decode requires the encoding to span the whole buffer; DecodeFrom reads
exactly one value from an io.Reader and reports the bytes consumed,
leaving the reader positioned after it. Decode ceilings against hostile
length prefixes live on the Codec struct; the package-level functions
use a default instance.
*/
package codec
