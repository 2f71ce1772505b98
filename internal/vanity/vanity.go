// Package vanity searches for key pairs whose public-key string starts
// with a wanted pattern, spreading candidate generation across workers.
package vanity

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/graphenix/wallet-core/pkg/keys"
)

// ErrInvalidPattern is returned when the wanted pattern contains
// characters outside the Base58 alphabet.
var ErrInvalidPattern = errors.New("vanity: pattern contains non-base58 characters")

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Result is a found key pair and the search effort behind it.
type Result struct {
	PrivateKey *keys.PrivateKey
	PublicKey  string
	Attempts   int64
}

// Options tunes a search.
type Options struct {
	// Prefix is the chain prefix of the public-key string, e.g. "BTS".
	Prefix string

	// NumWorkers is the parallel worker count (0 = one per CPU core).
	NumWorkers int

	// Progress, when non-nil, receives the running attempt count
	// roughly every ProgressEvery attempts.
	Progress      func(attempts int64)
	ProgressEvery int64
}

// Search generates random key pairs until one's public-key string
// carries the pattern right after the chain prefix, or ctx is done.
// Base58 is case-sensitive, so "bts" and "BTS" are different patterns.
func Search(ctx context.Context, pattern string, opts Options) (*Result, error) {
	for _, c := range pattern {
		if !strings.ContainsRune(base58Alphabet, c) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, c)
		}
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = keys.DefaultPrefix
	}
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	progressEvery := opts.ProgressEvery
	if progressEvery <= 0 {
		progressEvery = 50000
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan *Result, 1)
	var attempts int64

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, pattern, prefix, progressEvery, opts.Progress, &attempts, resultChan)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case result := <-resultChan:
		cancel()
		<-done
		result.Attempts = atomic.LoadInt64(&attempts)
		return result, nil
	case <-ctx.Done():
		<-done
		// A worker may have found a match in the same instant.
		select {
		case result := <-resultChan:
			result.Attempts = atomic.LoadInt64(&attempts)
			return result, nil
		default:
		}
		return nil, ctx.Err()
	}
}

func worker(
	ctx context.Context,
	pattern, prefix string,
	progressEvery int64,
	progress func(int64),
	attempts *int64,
	resultChan chan<- *Result,
) {
	want := prefix + pattern
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		priv, err := keys.NewPrivateKey(rand.Reader)
		if err != nil {
			continue
		}

		tested := atomic.AddInt64(attempts, 1)
		if progress != nil && tested%progressEvery == 0 {
			progress(tested)
		}

		pub := priv.PublicKey().String(prefix)
		if !strings.HasPrefix(pub, want) {
			priv.Zero()
			continue
		}

		select {
		case resultChan <- &Result{PrivateKey: priv, PublicKey: pub}:
		case <-ctx.Done():
			priv.Zero()
		}
		return
	}
}
