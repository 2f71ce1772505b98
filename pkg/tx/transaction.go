package tx

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/ops"
	"github.com/graphenix/wallet-core/pkg/sig"
	"github.com/graphenix/wallet-core/pkg/wire"
)

// MainnetChainID is the genesis digest of the BitShares main network.
const MainnetChainID = "4018d7844c78f6a6c41c6a552b898022310fc5dec06da467ee7905a8dad512c8"

var (
	// ErrNoOperations is returned when signing or serializing a
	// transaction that carries no operations.
	ErrNoOperations = errors.New("tx: transaction has no operations")

	// ErrNoSigners is returned when Sign is called without keys.
	ErrNoSigners = errors.New("tx: no signing keys")

	// ErrInvalidChainID is returned when a chain id string is not 32
	// hex-encoded bytes.
	ErrInvalidChainID = errors.New("tx: invalid chain id")
)

// ChainIDFromHex parses a 64-character hex chain id.
func ChainIDFromHex(s string) ([32]byte, error) {
	var id [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return id, ErrInvalidChainID
	}
	copy(id[:], raw)
	return id, nil
}

// Transaction is an unsigned operation bundle anchored to a recent
// block (TaPoS) with an expiration deadline.
type Transaction struct {
	RefBlockNum    uint16
	RefBlockPrefix uint32
	Expiration     time.Time
	Operations     []ops.Operation
}

// HeadSource reports the current chain head, letting wallets anchor
// transactions without this package taking a network dependency.
type HeadSource interface {
	HeadBlock() (num uint32, id [20]byte, err error)
}

// ApplyRefBlock anchors the transaction to a known block: the low 16
// bits of its number and the little-endian word at bytes 4..8 of its
// id. A forked chain cannot reproduce both, so the transaction dies
// with the fork.
func (t *Transaction) ApplyRefBlock(headBlockNum uint32, headBlockID [20]byte) {
	t.RefBlockNum = uint16(headBlockNum)
	t.RefBlockPrefix = uint32(headBlockID[4]) |
		uint32(headBlockID[5])<<8 |
		uint32(headBlockID[6])<<16 |
		uint32(headBlockID[7])<<24
}

// ApplyHead anchors the transaction to the head block reported by src.
func (t *Transaction) ApplyHead(src HeadSource) error {
	num, id, err := src.HeadBlock()
	if err != nil {
		return err
	}
	t.ApplyRefBlock(num, id)
	return nil
}

// SetExpiration sets the deadline to base plus delta, truncated to
// whole UTC seconds.
func (t *Transaction) SetExpiration(base time.Time, delta time.Duration) {
	t.Expiration = base.Add(delta).UTC().Truncate(time.Second)
}

// PushOperation appends an operation.
func (t *Transaction) PushOperation(op ops.Operation) {
	t.Operations = append(t.Operations, op)
}

// MarshalWire writes the canonical unsigned transaction bytes.
func (t *Transaction) MarshalWire(e *wire.Encoder) {
	e.WriteUint16(t.RefBlockNum)
	e.WriteUint32(t.RefBlockPrefix)
	ops.NewTimePointSec(t.Expiration).MarshalWire(e)
	e.WriteUvarint(uint64(len(t.Operations)))
	for _, op := range t.Operations {
		ops.Marshal(e, op)
	}
	e.WriteUvarint(0) // extensions
}

// Serialize returns the unsigned transaction bytes. These are the
// bytes the chain hashes, so every field must already be final.
func (t *Transaction) Serialize() []byte {
	e := wire.NewEncoder()
	t.MarshalWire(e)
	return e.Bytes()
}

// Digest returns the signing digest: sha256 over the chain id followed
// by the serialized transaction. Prefixing the chain id makes a
// signature for one network worthless on every other.
func (t *Transaction) Digest(chainID [32]byte) [32]byte {
	h := sha256.New()
	h.Write(chainID[:])
	h.Write(t.Serialize())
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// ID returns the transaction id: the first 20 bytes of the sha256 of
// the unsigned serialization, hex encoded. Note the id does not cover
// signatures.
func (t *Transaction) ID() string {
	sum := sha256.Sum256(t.Serialize())
	return hex.EncodeToString(sum[:20])
}

// Sign produces a SignedTransaction carrying one compact signature per
// key, in the order given.
func (t *Transaction) Sign(chainID [32]byte, privs ...*keys.PrivateKey) (*SignedTransaction, error) {
	if len(t.Operations) == 0 {
		return nil, ErrNoOperations
	}
	if len(privs) == 0 {
		return nil, ErrNoSigners
	}

	digest := t.Digest(chainID)
	signed := &SignedTransaction{Transaction: *t}
	for _, priv := range privs {
		s, err := sig.Sign(digest, priv)
		if err != nil {
			return nil, err
		}
		signed.Signatures = append(signed.Signatures, s)
	}
	return signed, nil
}

// SignedTransaction is a transaction plus its compact signatures, in
// broadcast wire form.
type SignedTransaction struct {
	Transaction
	Signatures []sig.Signature
}

// Serialize returns the broadcast bytes: the unsigned transaction
// followed by the signature set.
func (st *SignedTransaction) Serialize() []byte {
	e := wire.NewEncoder()
	st.Transaction.MarshalWire(e)
	e.WriteUvarint(uint64(len(st.Signatures)))
	for _, s := range st.Signatures {
		e.WriteRaw(s[:])
	}
	return e.Bytes()
}

// Verify checks every signature against the digest, returning the
// recovered public keys in signature order.
func (st *SignedTransaction) Verify(chainID [32]byte) ([]*keys.PublicKey, error) {
	digest := st.Digest(chainID)
	pubs := make([]*keys.PublicKey, 0, len(st.Signatures))
	for _, s := range st.Signatures {
		pub, err := sig.Recover(digest, s)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, pub)
	}
	return pubs, nil
}
