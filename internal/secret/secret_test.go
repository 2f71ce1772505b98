package secret

import (
	"math/big"
	"testing"
)

func TestWipe(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not wiped: %#x", i, v)
		}
	}
}

func TestWipeBig(t *testing.T) {
	v, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	WipeBig(v)
	if v.Sign() != 0 {
		t.Errorf("value not zeroed: %s", v)
	}
	WipeBig(nil) // must not panic
}
