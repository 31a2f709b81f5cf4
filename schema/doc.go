/*
Package schema defines the type descriptors that drive SSS encoding and
decoding. A descriptor is never written to the wire: both ends agree on
it out-of-band, which is what lets the encoding carry no type tags.

Descriptors form a closed sum (Bit, Uint, Scalar, Bytes, FixedBytes,
Tuple, Array, Container, Optional), nest to arbitrary depth, and are
immutable once built, so a single descriptor tree may be shared by any
number of concurrent codec calls.

Schemas can be built literally:

	typ := schema.Container{Fields: []schema.Type{
		schema.Uint{BitSize: 64},
		schema.Array{Elem: schema.FixedBytes{Length: 32}},
	}}

or parsed from the type language:

	typ, err := schema.Parse("{uint64,bytes32[]}")

Parse and String are inverses over canonical type strings.
*/
package schema
