package ops

import (
	"crypto/sha1"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"

	"github.com/graphenix/wallet-core/pkg/wire"
)

// VestingPolicyInitializer is the static_variant selecting how a
// vesting balance matures.
type VestingPolicyInitializer interface {
	vestingPolicyTag() uint64
	MarshalWire(e *wire.Encoder)
}

// LinearVestingPolicyInitializer is variant 0: linear vesting after a
// cliff.
type LinearVestingPolicyInitializer struct {
	BeginTimestamp         TimePointSec
	VestingCliffSeconds    uint32
	VestingDurationSeconds uint32
}

func (LinearVestingPolicyInitializer) vestingPolicyTag() uint64 { return 0 }

func (p LinearVestingPolicyInitializer) MarshalWire(e *wire.Encoder) {
	p.BeginTimestamp.MarshalWire(e)
	e.WriteUint32(p.VestingCliffSeconds)
	e.WriteUint32(p.VestingDurationSeconds)
}

// CDDVestingPolicyInitializer is variant 1: coin-days-destroyed
// vesting.
type CDDVestingPolicyInitializer struct {
	StartClaim     TimePointSec
	VestingSeconds uint32
}

func (CDDVestingPolicyInitializer) vestingPolicyTag() uint64 { return 1 }

func (p CDDVestingPolicyInitializer) MarshalWire(e *wire.Encoder) {
	p.StartClaim.MarshalWire(e)
	e.WriteUint32(p.VestingSeconds)
}

// InstantVestingPolicyInitializer is variant 2: no vesting delay.
type InstantVestingPolicyInitializer struct{}

func (InstantVestingPolicyInitializer) vestingPolicyTag() uint64 { return 2 }

func (InstantVestingPolicyInitializer) MarshalWire(e *wire.Encoder) {}

func writeVestingPolicy(e *wire.Encoder, p VestingPolicyInitializer) {
	e.WriteUvarint(p.vestingPolicyTag())
	p.MarshalWire(e)
}

// WorkerInitializer is the static_variant selecting what a worker does
// with its pay.
type WorkerInitializer interface {
	workerTag() uint64
	MarshalWire(e *wire.Encoder)
}

// RefundWorkerInitializer is variant 0: pay returns to the reserve.
type RefundWorkerInitializer struct{}

func (RefundWorkerInitializer) workerTag() uint64           { return 0 }
func (RefundWorkerInitializer) MarshalWire(e *wire.Encoder) {}

// VestingBalanceWorkerInitializer is variant 1: pay vests to the
// worker owner.
type VestingBalanceWorkerInitializer struct {
	PayVestingPeriodDays uint16
}

func (VestingBalanceWorkerInitializer) workerTag() uint64 { return 1 }

func (w VestingBalanceWorkerInitializer) MarshalWire(e *wire.Encoder) {
	e.WriteUint16(w.PayVestingPeriodDays)
}

// BurnWorkerInitializer is variant 2: pay is destroyed.
type BurnWorkerInitializer struct{}

func (BurnWorkerInitializer) workerTag() uint64           { return 2 }
func (BurnWorkerInitializer) MarshalWire(e *wire.Encoder) {}

func writeWorkerInitializer(e *wire.Encoder, w WorkerInitializer) {
	e.WriteUvarint(w.workerTag())
	w.MarshalWire(e)
}

// HTLCHash is the static_variant of preimage hash algorithms accepted
// by hashed time-lock contracts.
type HTLCHash interface {
	htlcHashTag() uint64
	MarshalWire(e *wire.Encoder)
}

// HTLCHashRIPEMD160 is variant 0.
type HTLCHashRIPEMD160 [20]byte

func (HTLCHashRIPEMD160) htlcHashTag() uint64 { return 0 }

func (h HTLCHashRIPEMD160) MarshalWire(e *wire.Encoder) { e.WriteRaw(h[:]) }

// HTLCHashSHA1 is variant 1.
type HTLCHashSHA1 [20]byte

func (HTLCHashSHA1) htlcHashTag() uint64 { return 1 }

func (h HTLCHashSHA1) MarshalWire(e *wire.Encoder) { e.WriteRaw(h[:]) }

// HTLCHashSHA256 is variant 2.
type HTLCHashSHA256 [32]byte

func (HTLCHashSHA256) htlcHashTag() uint64 { return 2 }

func (h HTLCHashSHA256) MarshalWire(e *wire.Encoder) { e.WriteRaw(h[:]) }

// HTLCHashHash160 is variant 3: ripemd160(sha256(preimage)).
type HTLCHashHash160 [20]byte

func (HTLCHashHash160) htlcHashTag() uint64 { return 3 }

func (h HTLCHashHash160) MarshalWire(e *wire.Encoder) { e.WriteRaw(h[:]) }

func writeHTLCHash(e *wire.Encoder, h HTLCHash) {
	e.WriteUvarint(h.htlcHashTag())
	h.MarshalWire(e)
}

// HashHTLCPreimageSHA256 digests a preimage for an SHA-256 lock.
func HashHTLCPreimageSHA256(preimage []byte) HTLCHashSHA256 {
	return HTLCHashSHA256(sha256.Sum256(preimage))
}

// HashHTLCPreimageSHA1 digests a preimage for an SHA-1 lock.
func HashHTLCPreimageSHA1(preimage []byte) HTLCHashSHA1 {
	return HTLCHashSHA1(sha1.Sum(preimage))
}

// HashHTLCPreimageRIPEMD160 digests a preimage for a RIPEMD-160 lock.
func HashHTLCPreimageRIPEMD160(preimage []byte) HTLCHashRIPEMD160 {
	var out HTLCHashRIPEMD160
	h := ripemd160.New()
	h.Write(preimage)
	copy(out[:], h.Sum(nil))
	return out
}

// HashHTLCPreimageHash160 digests a preimage for a Hash160 lock:
// ripemd160 over sha256.
func HashHTLCPreimageHash160(preimage []byte) HTLCHashHash160 {
	inner := sha256.Sum256(preimage)
	h := ripemd160.New()
	h.Write(inner[:])
	var out HTLCHashHash160
	copy(out[:], h.Sum(nil))
	return out
}
