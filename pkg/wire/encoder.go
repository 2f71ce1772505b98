package wire

import "encoding/binary"

// Encoder accumulates the canonical byte form of chain structures.
// All integers are little-endian; counts and object instances are
// base-128 varints. Writes never fail: the buffer grows as needed.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated buffer. The encoder retains ownership;
// callers must not write to the encoder after using the slice.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// WriteUint8 appends a single byte.
func (e *Encoder) WriteUint8(b byte) {
	e.buf = append(e.buf, b)
}

// WriteBool appends 0x01 for true, 0x00 for false.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.WriteUint8(1)
	} else {
		e.WriteUint8(0)
	}
}

// WriteUint16 appends a little-endian 16-bit integer.
func (e *Encoder) WriteUint16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

// WriteUint32 appends a little-endian 32-bit integer.
func (e *Encoder) WriteUint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// WriteUint64 appends a little-endian 64-bit integer.
func (e *Encoder) WriteUint64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

// WriteInt64 appends a little-endian signed 64-bit integer in
// two's-complement form.
func (e *Encoder) WriteInt64(v int64) {
	e.WriteUint64(uint64(v))
}

// WriteUvarint appends v as a base-128 varint: 7 payload bits per
// byte, least-significant group first, 0x80 continuation bit.
func (e *Encoder) WriteUvarint(v uint64) {
	e.buf = binary.AppendUvarint(e.buf, v)
}

// WriteBytes appends a varint length prefix followed by the raw bytes.
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteUvarint(uint64(len(b)))
	e.buf = append(e.buf, b...)
}

// WriteString appends a varint length prefix followed by the string.
func (e *Encoder) WriteString(s string) {
	e.WriteUvarint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

// WriteRaw appends bytes with no length prefix. Used for fixed-size
// fields such as 33-byte keys and 20- or 32-byte digests, whose length
// is implied by position.
func (e *Encoder) WriteRaw(b []byte) {
	e.buf = append(e.buf, b...)
}

// WriteOptional appends the 1-byte presence flag of an optional field.
// The caller writes the value itself only when present is true.
func (e *Encoder) WriteOptional(present bool) {
	e.WriteBool(present)
}
