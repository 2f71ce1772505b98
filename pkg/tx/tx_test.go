package tx

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/ops"
)

func referenceTransaction() *Transaction {
	t := &Transaction{
		RefBlockNum:    1234,
		RefBlockPrefix: 0xdeadbeef,
		Expiration:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	t.PushOperation(&ops.Transfer{
		From:   123,
		To:     456,
		Amount: ops.AssetAmount{Amount: 100000, Asset: 0},
	})
	return t
}

func mainnetID(t *testing.T) [32]byte {
	t.Helper()
	id, err := ChainIDFromHex(MainnetChainID)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func testKey(t *testing.T, last byte) *keys.PrivateKey {
	t.Helper()
	raw := make([]byte, 32)
	raw[31] = last
	priv, err := keys.PrivateKeyFromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	return priv
}

func TestTransactionSerialization(t *testing.T) {
	trx := referenceTransaction()

	const want = "d204efbeadde8085746701000000000000000000007bc803a08601000000000000000000"
	if got := hex.EncodeToString(trx.Serialize()); got != want {
		t.Fatalf("serialized = %s, want %s", got, want)
	}
}

func TestTransactionDigestAndID(t *testing.T) {
	trx := referenceTransaction()

	digest := trx.Digest(mainnetID(t))
	const wantDigest = "9073b8c7f27f5d2a2700223323aa00d1b67d213d0aa02947aeaa01fab6650b93"
	if got := hex.EncodeToString(digest[:]); got != wantDigest {
		t.Fatalf("digest = %s, want %s", got, wantDigest)
	}

	const wantID = "d441c597c1072467c4823e0a9fbaabffd3770c92"
	if got := trx.ID(); got != wantID {
		t.Fatalf("id = %s, want %s", got, wantID)
	}
}

func TestDigestChangesWithEveryField(t *testing.T) {
	chainID := mainnetID(t)
	base := referenceTransaction().Digest(chainID)

	mutations := map[string]func(*Transaction){
		"ref_block_num":    func(trx *Transaction) { trx.RefBlockNum++ },
		"ref_block_prefix": func(trx *Transaction) { trx.RefBlockPrefix++ },
		"expiration":       func(trx *Transaction) { trx.Expiration = trx.Expiration.Add(time.Second) },
		"operation": func(trx *Transaction) {
			trx.Operations[0].(*ops.Transfer).Amount.Amount++
		},
	}
	for name, mutate := range mutations {
		trx := referenceTransaction()
		mutate(trx)
		if trx.Digest(chainID) == base {
			t.Errorf("mutating %s did not change the digest", name)
		}
	}

	var otherChain [32]byte
	if referenceTransaction().Digest(otherChain) == base {
		t.Error("digest ignores the chain id")
	}
}

func TestApplyRefBlock(t *testing.T) {
	var id [20]byte
	for i := range id {
		id[i] = byte(i)
	}

	var trx Transaction
	trx.ApplyRefBlock(0x12345678, id)
	if trx.RefBlockNum != 0x5678 {
		t.Errorf("ref_block_num = %#x, want 0x5678", trx.RefBlockNum)
	}
	if trx.RefBlockPrefix != 0x07060504 {
		t.Errorf("ref_block_prefix = %#x, want 0x07060504", trx.RefBlockPrefix)
	}
}

type fixedHead struct {
	num uint32
	id  [20]byte
	err error
}

func (h fixedHead) HeadBlock() (uint32, [20]byte, error) { return h.num, h.id, h.err }

func TestApplyHead(t *testing.T) {
	var id [20]byte
	id[4], id[5], id[6], id[7] = 0xef, 0xbe, 0xad, 0xde

	var trx Transaction
	if err := trx.ApplyHead(fixedHead{num: 70000, id: id}); err != nil {
		t.Fatal(err)
	}
	if trx.RefBlockNum != 70000&0xffff || trx.RefBlockPrefix != 0xdeadbeef {
		t.Fatalf("anchor = %#x/%#x", trx.RefBlockNum, trx.RefBlockPrefix)
	}

	headErr := errors.New("head unavailable")
	if err := trx.ApplyHead(fixedHead{err: headErr}); !errors.Is(err, headErr) {
		t.Fatalf("ApplyHead error = %v", err)
	}
}

func TestSetExpiration(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 999999999, time.UTC)

	var trx Transaction
	trx.SetExpiration(base, 30*time.Second)
	want := time.Date(2025, 6, 1, 12, 0, 30, 0, time.UTC)
	if !trx.Expiration.Equal(want) {
		t.Fatalf("expiration = %v, want %v", trx.Expiration, want)
	}
}

func TestSignAndVerify(t *testing.T) {
	chainID := mainnetID(t)
	priv := testKey(t, 1)
	other := testKey(t, 2)

	signed, err := referenceTransaction().Sign(chainID, priv, other)
	if err != nil {
		t.Fatal(err)
	}
	if len(signed.Signatures) != 2 {
		t.Fatalf("signature count = %d", len(signed.Signatures))
	}

	pubs, err := signed.Verify(chainID)
	if err != nil {
		t.Fatal(err)
	}
	if !pubs[0].Equal(priv.PublicKey()) || !pubs[1].Equal(other.PublicKey()) {
		t.Fatal("recovered keys do not match the signers")
	}

	// Signing is deterministic, so a second pass yields the same bytes.
	again, err := referenceTransaction().Sign(chainID, priv, other)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(signed.Serialize(), again.Serialize()) {
		t.Fatal("signing is not deterministic")
	}
}

func TestSignedSerializeLayout(t *testing.T) {
	chainID := mainnetID(t)
	trx := referenceTransaction()
	signed, err := trx.Sign(chainID, testKey(t, 1))
	if err != nil {
		t.Fatal(err)
	}

	unsigned := trx.Serialize()
	broadcast := signed.Serialize()
	if !bytes.Equal(broadcast[:len(unsigned)], unsigned) {
		t.Fatal("signed form does not start with the unsigned bytes")
	}
	if len(broadcast) != len(unsigned)+1+65 {
		t.Fatalf("signed length = %d, want %d", len(broadcast), len(unsigned)+1+65)
	}
	if broadcast[len(unsigned)] != 1 {
		t.Fatalf("signature count byte = %d", broadcast[len(unsigned)])
	}
}

func TestSignErrors(t *testing.T) {
	chainID := mainnetID(t)

	var empty Transaction
	if _, err := empty.Sign(chainID, testKey(t, 1)); !errors.Is(err, ErrNoOperations) {
		t.Errorf("empty transaction error = %v, want ErrNoOperations", err)
	}

	if _, err := referenceTransaction().Sign(chainID); !errors.Is(err, ErrNoSigners) {
		t.Errorf("no signers error = %v, want ErrNoSigners", err)
	}
}

func TestChainIDFromHex(t *testing.T) {
	if _, err := ChainIDFromHex("zz"); !errors.Is(err, ErrInvalidChainID) {
		t.Errorf("bad hex error = %v", err)
	}
	if _, err := ChainIDFromHex("abcd"); !errors.Is(err, ErrInvalidChainID) {
		t.Errorf("short id error = %v", err)
	}
	id, err := ChainIDFromHex(MainnetChainID)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(id[:]) != MainnetChainID {
		t.Error("chain id round trip mismatch")
	}
}
