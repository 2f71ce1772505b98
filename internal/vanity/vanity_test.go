package vanity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/graphenix/wallet-core/pkg/keys"
)

func TestSearchFindsShortPattern(t *testing.T) {
	if testing.Short() {
		t.Skip("probabilistic search")
	}

	result, err := Search(context.Background(), "A", Options{NumWorkers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(result.PublicKey, keys.DefaultPrefix+"A") {
		t.Fatalf("public key %s does not carry the pattern", result.PublicKey)
	}
	if result.Attempts < 1 {
		t.Fatalf("attempts = %d", result.Attempts)
	}

	// The returned private key really derives the matching public key.
	if got := result.PrivateKey.PublicKey().String(keys.DefaultPrefix); got != result.PublicKey {
		t.Fatalf("derived %s, want %s", got, result.PublicKey)
	}
}

func TestSearchRejectsNonBase58Pattern(t *testing.T) {
	for _, bad := range []string{"0", "O", "I", "l", "B+S"} {
		if _, err := Search(context.Background(), bad, Options{NumWorkers: 1}); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("Search(%q) error = %v, want ErrInvalidPattern", bad, err)
		}
	}
}

func TestSearchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// A pattern this long will not turn up within the timeout.
	_, err := Search(ctx, "zzzzzzzzzz", Options{NumWorkers: 2})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
}
