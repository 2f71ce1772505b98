package ops

import (
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// Operation is one typed ledger action. MarshalWire writes the
// operation body in the exact field order the chain hashes; the type
// tag is framed by Marshal.
type Operation interface {
	Type() OpType
	MarshalWire(e *wire.Encoder)
}

// Marshal frames an operation for a transaction: varint type id
// followed by the body.
func Marshal(e *wire.Encoder, op Operation) {
	e.WriteUvarint(uint64(op.Type()))
	op.MarshalWire(e)
}

// Serialize returns the framed bytes of a single operation.
func Serialize(op Operation) []byte {
	e := wire.NewEncoder()
	Marshal(e, op)
	return e.Bytes()
}

// SerializeBody returns only the operation body, without the type tag.
func SerializeBody(op Operation) []byte {
	e := wire.NewEncoder()
	op.MarshalWire(e)
	return e.Bytes()
}

// OpaqueOperation carries an operation this codec has no serializer
// for. The body is framed as a length-prefixed blob, which is not the
// canonical byte form the chain hashes: it is a last resort for
// pass-through, never for operations that must verify on-chain.
type OpaqueOperation struct {
	ID   OpType
	Data []byte
}

// Type returns the carried type id.
func (op *OpaqueOperation) Type() OpType { return op.ID }

// MarshalWire writes the opaque payload with a length prefix.
func (op *OpaqueOperation) MarshalWire(e *wire.Encoder) {
	e.WriteBytes(op.Data)
}

// writeOptionalMemo frames an optional memo field: a presence byte
// followed by the memo body when present.
func writeOptionalMemo(e *wire.Encoder, m *memo.Memo) {
	if m == nil {
		e.WriteOptional(false)
		return
	}
	e.WriteOptional(true)
	writeMemoBody(e, m)
}

// writeMemoBody writes the memo fields with no presence byte. A memo
// carrying sender and recipient keys uses the encrypted layout: from ‖
// to ‖ nonce ‖ length-prefixed message. A memo without keys is a bare
// length-prefixed plaintext blob, the weaker unencrypted mode.
func writeMemoBody(e *wire.Encoder, m *memo.Memo) {
	if m.From == nil && m.To == nil {
		e.WriteBytes(m.Message)
		return
	}
	e.WriteRaw(m.From.Bytes())
	e.WriteRaw(m.To.Bytes())
	e.WriteUint64(m.Nonce)
	e.WriteBytes(m.Message)
}
