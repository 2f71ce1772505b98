package ops

import (
	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// StealthConfirmation lets a blind-output recipient locate and decrypt
// their output: a fresh one-time key plus an encrypted receipt.
type StealthConfirmation struct {
	OneTimeKey    *keys.PublicKey
	To            *keys.PublicKey
	EncryptedMemo []byte
}

// MarshalWire writes the confirmation fields.
func (c StealthConfirmation) MarshalWire(e *wire.Encoder) {
	e.WriteRaw(c.OneTimeKey.Bytes())
	e.WriteOptional(c.To != nil)
	if c.To != nil {
		e.WriteRaw(c.To.Bytes())
	}
	e.WriteBytes(c.EncryptedMemo)
}

// BlindOutput is one Pedersen-committed output of a blind transfer.
type BlindOutput struct {
	Commitment  [33]byte
	RangeProof  []byte
	Owner       Authority
	StealthMemo *StealthConfirmation
}

// MarshalWire writes the output fields.
func (o BlindOutput) MarshalWire(e *wire.Encoder) {
	e.WriteRaw(o.Commitment[:])
	e.WriteBytes(o.RangeProof)
	o.Owner.MarshalWire(e)
	e.WriteOptional(o.StealthMemo != nil)
	if o.StealthMemo != nil {
		o.StealthMemo.MarshalWire(e)
	}
}

// BlindInput spends a previously created blind output.
type BlindInput struct {
	Commitment [33]byte
	Owner      Authority
}

// MarshalWire writes the input fields.
func (i BlindInput) MarshalWire(e *wire.Encoder) {
	e.WriteRaw(i.Commitment[:])
	i.Owner.MarshalWire(e)
}

func writeBlindOutputs(e *wire.Encoder, outs []BlindOutput) {
	e.WriteUvarint(uint64(len(outs)))
	for _, o := range outs {
		o.MarshalWire(e)
	}
}

func writeBlindInputs(e *wire.Encoder, ins []BlindInput) {
	e.WriteUvarint(uint64(len(ins)))
	for _, i := range ins {
		i.MarshalWire(e)
	}
}

// TransferToBlind converts a public balance into blind outputs.
type TransferToBlind struct {
	Fee            AssetAmount
	Amount         AssetAmount
	From           AccountID
	BlindingFactor [32]byte
	Outputs        []BlindOutput
}

// Type implements Operation.
func (op *TransferToBlind) Type() OpType { return TypeTransferToBlind }

// MarshalWire implements Operation.
func (op *TransferToBlind) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	op.Amount.MarshalWire(e)
	e.WriteUvarint(uint64(op.From))
	e.WriteRaw(op.BlindingFactor[:])
	writeBlindOutputs(e, op.Outputs)
}

// BlindTransfer moves value between blind outputs without revealing
// amounts.
type BlindTransfer struct {
	Fee     AssetAmount
	Inputs  []BlindInput
	Outputs []BlindOutput
}

// Type implements Operation.
func (op *BlindTransfer) Type() OpType { return TypeBlindTransfer }

// MarshalWire implements Operation.
func (op *BlindTransfer) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	writeBlindInputs(e, op.Inputs)
	writeBlindOutputs(e, op.Outputs)
}

// TransferFromBlind converts blind outputs back into a public balance.
type TransferFromBlind struct {
	Fee            AssetAmount
	Amount         AssetAmount
	To             AccountID
	BlindingFactor [32]byte
	Inputs         []BlindInput
}

// Type implements Operation.
func (op *TransferFromBlind) Type() OpType { return TypeTransferFromBlind }

// MarshalWire implements Operation.
func (op *TransferFromBlind) MarshalWire(e *wire.Encoder) {
	op.Fee.MarshalWire(e)
	op.Amount.MarshalWire(e)
	e.WriteUvarint(uint64(op.To))
	e.WriteRaw(op.BlindingFactor[:])
	writeBlindInputs(e, op.Inputs)
}
