package cft

import (
	"github.com/verifierkit/cft/big"
	"github.com/verifierkit/cft/internal/common"
)

// SecurityParams holds the protocol-wide security parameters. They are
// threaded explicitly through Prove and Verify rather than fixed as process
// globals, so alternate parameter sets can be exercised; prover and verifier
// must agree on them.
type SecurityParams struct {
	T uint // challenge bit length, half the target soundness; at most common.DigestBits
	L uint // statistical zero-knowledge slack
	S uint // bit length headroom of the blinding factor in the commitment scheme

	// MaxAttempts bounds the rejection sampling loop in Prove; zero means
	// DefaultMaxAttempts. Each candidate is accepted with probability at
	// least 1 - 2^-L, so the bound caps worst-case latency rather than
	// affecting correctness.
	MaxAttempts int
}

// DefaultMaxAttempts is the Prove retry budget used when
// SecurityParams.MaxAttempts is left zero.
const DefaultMaxAttempts = 32

// DefaultParams is the parameter set of the deployed protocol: a 256 bit
// digest halved into a 128 bit challenge, and 40 bits of statistical hiding
// for both the masked value and the blinding factor.
var DefaultParams = SecurityParams{T: 128, L: 40, S: 40}

func (p SecurityParams) maxAttempts() int {
	if p.MaxAttempts > 0 {
		return p.MaxAttempts
	}
	return DefaultMaxAttempts
}

// challenge derives the challenge from a digest as its low-order T bits.
func (p SecurityParams) challenge(C *big.Int) *big.Int {
	return new(big.Int).Mod(C, common.PowerOfTwo(p.T))
}
