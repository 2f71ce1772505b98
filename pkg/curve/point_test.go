package curve

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func TestGeneratorOnCurve(t *testing.T) {
	if !Generator().OnCurve() {
		t.Fatal("generator is not on the curve")
	}
}

func TestGeneratorCompressed(t *testing.T) {
	// scalar 1 must yield exactly 0x02 || Gx
	got := BaseMult(big.NewInt(1)).Compress()
	want := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("compressed G = %x, want %s", got, want)
	}
}

func TestDoubleGenerator(t *testing.T) {
	// Standard test vector for 2G on secp256k1.
	wantX, _ := new(big.Int).SetString("C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5", 16)
	wantY, _ := new(big.Int).SetString("1AE168FEA63DC339A3C58419466CEAEEF7F632653266D0E1236431A950CFE52A", 16)

	twoG := Generator().Double()
	if twoG.X().Cmp(wantX) != 0 || twoG.Y().Cmp(wantY) != 0 {
		t.Errorf("2G = (%x, %x), want (%x, %x)", twoG.X(), twoG.Y(), wantX, wantY)
	}

	// ScalarMult(2) and Add(G, G) must agree with Double(G).
	if !BaseMult(big.NewInt(2)).Equal(twoG) {
		t.Error("ScalarMult(2) != Double(G)")
	}
	if !Generator().Add(Generator()).Equal(twoG) {
		t.Error("G + G != Double(G)")
	}
}

func TestInfinityIdentity(t *testing.T) {
	g := Generator()
	if !g.Add(Infinity()).Equal(g) {
		t.Error("G + infinity != G")
	}
	if !Infinity().Add(g).Equal(g) {
		t.Error("infinity + G != G")
	}
	if !g.Add(g.Negate()).IsInfinity() {
		t.Error("G + (-G) is not infinity")
	}
	if !Infinity().Double().IsInfinity() {
		t.Error("2*infinity is not infinity")
	}
}

func TestScalarMultEdgeCases(t *testing.T) {
	g := Generator()
	if !g.ScalarMult(big.NewInt(0)).IsInfinity() {
		t.Error("0*G is not infinity")
	}
	if !g.ScalarMult(N).IsInfinity() {
		t.Error("N*G is not infinity (scalar not reduced)")
	}
	// (N+1)*G == G
	nPlus1 := new(big.Int).Add(N, big.NewInt(1))
	if !g.ScalarMult(nPlus1).Equal(g) {
		t.Error("(N+1)*G != G")
	}
}

// TestScalarMultAgainstDecred cross-checks the ladder against the decred
// library for random scalars.
func TestScalarMultAgainstDecred(t *testing.T) {
	for i := 0; i < 16; i++ {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			t.Fatalf("rand: %v", err)
		}
		k := new(big.Int).SetBytes(buf[:])
		k.Mod(k, N)
		if k.Sign() == 0 {
			continue
		}

		var kb [32]byte
		k.FillBytes(kb[:])
		want := secp256k1.PrivKeyFromBytes(kb[:]).PubKey().SerializeCompressed()

		got := BaseMult(k).Compress()
		if !bytes.Equal(got[:], want) {
			t.Fatalf("scalar %x: ladder %x, decred %x", k, got, want)
		}
	}
}

func TestCompressRoundTrip(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 7, 1337, 65537} {
		p := BaseMult(big.NewInt(k))
		enc := p.Compress()
		back, err := Decompress(enc[:])
		if err != nil {
			t.Fatalf("k=%d: decompress: %v", k, err)
		}
		if !back.Equal(p) {
			t.Errorf("k=%d: round-trip mismatch", k)
		}
	}
}

func TestDecompressRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", make([]byte, 32)},
		{"long", make([]byte, 34)},
		{"bad prefix", append([]byte{0x04}, make([]byte, 32)...)},
		// x = 5: x^3+7 = 132 is a quadratic non-residue mod P.
		{"non-residue x", append([]byte{0x02}, big.NewInt(5).FillBytes(make([]byte, 32))...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decompress(tt.data); !errors.Is(err, ErrPointNotOnCurve) {
				t.Errorf("Decompress(%x) = %v, want ErrPointNotOnCurve", tt.data, err)
			}
		})
	}
}

func TestNewPointRejectsOffCurve(t *testing.T) {
	if _, err := NewPoint(big.NewInt(1), big.NewInt(1)); !errors.Is(err, ErrPointNotOnCurve) {
		t.Errorf("NewPoint(1,1) = %v, want ErrPointNotOnCurve", err)
	}
}

func TestInverse(t *testing.T) {
	a := big.NewInt(12345)
	inv, err := Inverse(a, N)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	product := new(big.Int).Mul(a, inv)
	product.Mod(product, N)
	if product.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("a * a^-1 = %s, want 1", product)
	}

	if _, err := Inverse(big.NewInt(0), N); !errors.Is(err, ErrNoInverse) {
		t.Errorf("Inverse(0) = %v, want ErrNoInverse", err)
	}
}

func TestSqrtModP(t *testing.T) {
	// 2G's x coordinate gives a residue; its sqrt squared must match.
	x, _ := new(big.Int).SetString("C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5", 16)
	rhs := rhsOf(x)
	y := SqrtModP(rhs)
	sq := new(big.Int).Mul(y, y)
	sq.Mod(sq, P)
	if sq.Cmp(rhs) != 0 {
		t.Error("sqrt squared does not recover the residue")
	}
}

func TestReduce(t *testing.T) {
	neg := big.NewInt(-5)
	got := Reduce(neg, big.NewInt(7))
	if got.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("Reduce(-5, 7) = %s, want 2", got)
	}
}
