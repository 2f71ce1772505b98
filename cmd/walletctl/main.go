package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/graphenix/wallet-core/internal/vanity"
	"github.com/graphenix/wallet-core/pkg/keys"
	"github.com/graphenix/wallet-core/pkg/memo"
	"github.com/graphenix/wallet-core/pkg/sig"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "keygen":
		err = runKeygen(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	case "sign":
		err = runSign(os.Args[2:])
	case "recover":
		err = runRecover(os.Args[2:])
	case "memo":
		err = runMemo(os.Args[2:])
	case "vanity":
		err = runVanity(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: walletctl <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  keygen    Generate a key pair (random, seed, or brain key)")
	fmt.Fprintln(os.Stderr, "  inspect   Show the public key and address behind a WIF or key string")
	fmt.Fprintln(os.Stderr, "  sign      Sign a 32-byte digest or a message with a WIF key")
	fmt.Fprintln(os.Stderr, "  recover   Recover the signer's public key from a compact signature")
	fmt.Fprintln(os.Stderr, "  memo      Encrypt or decrypt a memo")
	fmt.Fprintln(os.Stderr, "  vanity    Search for a key pair with a wanted public-key pattern")
}

func runKeygen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	seed := fs.String("seed", "", "Deterministic seed string (empty = random key)")
	brainKey := fs.String("brain-key", "", "Brain key phrase (normalized before hashing)")
	sequence := fs.Int("sequence", 0, "Brain key derivation sequence number")
	prefix := fs.String("prefix", keys.DefaultPrefix, "Chain address prefix")
	fs.Parse(args)

	var priv *keys.PrivateKey
	var err error
	switch {
	case *brainKey != "":
		priv = keys.PrivateKeyFromBrainKey(*brainKey, *sequence)
	case *seed != "":
		priv = keys.PrivateKeyFromSeed(*seed)
	default:
		priv, err = keys.NewPrivateKey(rand.Reader)
		if err != nil {
			return err
		}
	}
	defer priv.Zero()

	pub := priv.PublicKey()
	color.Green("Generated key pair")
	color.White("WIF:        %s", priv.WIF())
	color.White("Public key: %s", pub.String(*prefix))
	color.White("Address:    %s", keys.AddressFromPublicKey(pub).String(*prefix))
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	wif := fs.String("wif", "", "Private key in WIF")
	pubStr := fs.String("pub", "", "Public key string")
	prefix := fs.String("prefix", keys.DefaultPrefix, "Chain address prefix")
	fs.Parse(args)

	var pub *keys.PublicKey
	switch {
	case *wif != "":
		priv, err := keys.PrivateKeyFromWIF(*wif)
		if err != nil {
			return err
		}
		defer priv.Zero()
		pub = priv.PublicKey()
	case *pubStr != "":
		var err error
		pub, err = keys.PublicKeyFromString(*pubStr, *prefix)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("one of --wif or --pub is required")
	}

	color.White("Public key: %s", pub.String(*prefix))
	color.White("Compressed: %s", hex.EncodeToString(pub.Bytes()))
	color.White("Address:    %s", keys.AddressFromPublicKey(pub).String(*prefix))
	return nil
}

func digestFromFlags(digestHex, message string) ([32]byte, error) {
	var digest [32]byte
	switch {
	case digestHex != "":
		raw, err := hex.DecodeString(digestHex)
		if err != nil || len(raw) != 32 {
			return digest, fmt.Errorf("--digest must be 32 hex-encoded bytes")
		}
		copy(digest[:], raw)
	case message != "":
		digest = sha256.Sum256([]byte(message))
	default:
		return digest, fmt.Errorf("one of --digest or --message is required")
	}
	return digest, nil
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	wif := fs.String("wif", "", "Private key in WIF (required)")
	digestHex := fs.String("digest", "", "32-byte digest to sign, hex encoded")
	message := fs.String("message", "", "Message to hash with sha256 and sign")
	fs.Parse(args)

	if *wif == "" {
		return fmt.Errorf("--wif is required")
	}
	digest, err := digestFromFlags(*digestHex, *message)
	if err != nil {
		return err
	}

	priv, err := keys.PrivateKeyFromWIF(*wif)
	if err != nil {
		return err
	}
	defer priv.Zero()

	signature, err := sig.Sign(digest, priv)
	if err != nil {
		return err
	}

	color.Green("Signed")
	color.White("Digest:    %s", hex.EncodeToString(digest[:]))
	color.White("Signature: %s", signature.Hex())
	return nil
}

func runRecover(args []string) error {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	sigHex := fs.String("signature", "", "65-byte compact signature, hex encoded (required)")
	digestHex := fs.String("digest", "", "32-byte digest that was signed, hex encoded")
	message := fs.String("message", "", "Message that was hashed and signed")
	prefix := fs.String("prefix", keys.DefaultPrefix, "Chain address prefix")
	fs.Parse(args)

	if *sigHex == "" {
		return fmt.Errorf("--signature is required")
	}
	digest, err := digestFromFlags(*digestHex, *message)
	if err != nil {
		return err
	}

	signature, err := sig.SignatureFromHex(*sigHex)
	if err != nil {
		return err
	}
	pub, err := sig.Recover(digest, signature)
	if err != nil {
		return err
	}

	color.Green("Recovered signer")
	color.White("Public key: %s", pub.String(*prefix))
	color.White("Address:    %s", keys.AddressFromPublicKey(pub).String(*prefix))
	return nil
}

func runMemo(args []string) error {
	fs := flag.NewFlagSet("memo", flag.ExitOnError)
	wif := fs.String("wif", "", "Own private key in WIF (required)")
	otherStr := fs.String("other", "", "Counterparty public key string (required)")
	message := fs.String("message", "", "Plaintext to encrypt")
	cipherHex := fs.String("cipher", "", "Ciphertext to decrypt, hex encoded")
	nonce := fs.Uint64("nonce", 0, "Memo nonce (decrypt; 0 on encrypt = random)")
	prefix := fs.String("prefix", keys.DefaultPrefix, "Chain address prefix")
	fs.Parse(args)

	if *wif == "" || *otherStr == "" {
		return fmt.Errorf("--wif and --other are required")
	}

	priv, err := keys.PrivateKeyFromWIF(*wif)
	if err != nil {
		return err
	}
	defer priv.Zero()

	other, err := keys.PublicKeyFromString(*otherStr, *prefix)
	if err != nil {
		return err
	}

	switch {
	case *message != "":
		var m *memo.Memo
		if *nonce != 0 {
			m, err = memo.EncryptWithNonce(priv, other, *nonce, []byte(*message))
		} else {
			m, err = memo.Encrypt(rand.Reader, priv, other, []byte(*message))
		}
		if err != nil {
			return err
		}
		color.Green("Encrypted")
		color.White("Nonce:      %d", m.Nonce)
		color.White("Ciphertext: %s", hex.EncodeToString(m.Message))
	case *cipherHex != "":
		raw, err := hex.DecodeString(*cipherHex)
		if err != nil {
			return fmt.Errorf("--cipher must be hex encoded")
		}
		m := &memo.Memo{
			From:    priv.PublicKey(),
			To:      other,
			Nonce:   *nonce,
			Message: raw,
		}
		plain, err := m.Decrypt(priv)
		if err != nil {
			return err
		}
		color.Green("Decrypted")
		color.White("Message: %s", plain)
	default:
		return fmt.Errorf("one of --message or --cipher is required")
	}
	return nil
}

func runVanity(args []string) error {
	fs := flag.NewFlagSet("vanity", flag.ExitOnError)
	pattern := fs.String("pattern", "", "Wanted pattern after the chain prefix (required)")
	prefix := fs.String("prefix", keys.DefaultPrefix, "Chain address prefix")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
	timeout := fs.Duration("timeout", 0, "Give up after this long (0 = search forever)")
	fs.Parse(args)

	if *pattern == "" {
		return fmt.Errorf("--pattern is required")
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	color.Cyan("Searching for %s%s...", *prefix, *pattern)
	start := time.Now()
	result, err := vanity.Search(ctx, *pattern, vanity.Options{
		Prefix:     *prefix,
		NumWorkers: *workers,
		Progress: func(attempts int64) {
			fmt.Printf("Tested %d keys...\n", attempts)
		},
	})
	if err != nil {
		return err
	}
	defer result.PrivateKey.Zero()

	color.Green("Found after %d attempts in %s", result.Attempts, time.Since(start).Round(time.Millisecond))
	color.White("WIF:        %s", result.PrivateKey.WIF())
	color.White("Public key: %s", result.PublicKey)
	return nil
}
