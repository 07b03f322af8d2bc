package cft

import (
	"io"

	"github.com/verifierkit/cft/big"
	"github.com/verifierkit/cft/internal/common"
)

// Proof demonstrates that a committed number lies in the interval
// [-2^(T+L)*b, 2^(T+L)*b]. C is the Fiat-Shamir digest of the prover's
// masking value; D1 and D2 are the integer responses. The responses are
// deliberately not reduced modulo N: their magnitude carries the statistical
// hiding property. A Proof is created once and never mutated.
type Proof struct {
	C  *big.Int `json:"C"`
	D1 *big.Int `json:"D1"`
	D2 *big.Int `json:"D2"`
}

// Prove shows that the number x committed to as E = g^x * h^r mod N is at
// most b, without revealing x or r. The bound b must be positive. The caller
// supplies the secure randomness source; NewSecureSource provides one.
// Candidate responses outside the public acceptance range are rejected and
// resampled, at most the configured number of times.
func Prove(params SecurityParams, grp *GroupParams, b, x, r *big.Int, rand io.Reader) (*Proof, error) {
	if x.Cmp(b) > 0 {
		return nil, ErrWitnessOutOfRange
	}

	// Sampling bounds: w uniform on [0, 2^(T+L)*b), the magnitude of n
	// uniform on [0, 2^(T+L+S)*N - 1] with an independent sign.
	wLimit := new(big.Int).Mul(common.PowerOfTwo(params.T+params.L), b)
	nMax := new(big.Int).Mul(common.PowerOfTwo(params.T+params.L+params.S), grp.N)
	nMax.Sub(nMax, big.NewInt(1))

	attempts := params.maxAttempts()
	for i := 0; i < attempts; i++ {
		w, err := common.RandomInRange(rand, wLimit)
		if err != nil {
			return nil, err
		}
		n, err := common.RandomSignedInt(rand, nMax)
		if err != nil {
			return nil, err
		}

		// W = g^w * h^n mod N
		hn, err := common.ModPow(grp.H, n, grp.N)
		if err != nil {
			return nil, err
		}
		W := new(big.Int).Exp(grp.G, w, grp.N)
		W.Mul(W, hn).Mod(W, grp.N)

		C := common.IntDigest(W)
		c := params.challenge(C)

		D1 := new(big.Int).Add(w, new(big.Int).Mul(c, x)) // w + cx
		D2 := new(big.Int).Add(n, new(big.Int).Mul(c, r)) // n + cr

		if responseInRange(params, D1, c, b) {
			return &Proof{C: C, D1: D1, D2: D2}, nil
		}
		Logger.Debugf("cft: rejected response candidate, attempt %d of %d", i+1, attempts)
	}
	return nil, ErrProofGenerationFailed
}

// Verify checks a proof against the public commitment E and bound b. It
// returns nil on acceptance, ErrInvalidCommitment for a zero commitment and
// ErrProofVerificationFailed for everything else; which sub-check failed is
// not reported. Verify is deterministic and side-effect free.
func Verify(params SecurityParams, grp *GroupParams, b, E *big.Int, proof *Proof) error {
	if proof == nil || proof.C == nil || proof.D1 == nil || proof.D2 == nil {
		return ErrProofVerificationFailed
	}

	e := new(big.Int).Mod(E, grp.N)
	if e.Sign() == 0 {
		// 0 cannot be raised to the negative power below.
		return ErrInvalidCommitment
	}

	c := params.challenge(proof.C)

	// W' = g^D1 * h^D2 * E^-c mod N
	gd, err := common.ModPow(grp.G, proof.D1, grp.N)
	if err != nil {
		return ErrProofVerificationFailed
	}
	hd, err := common.ModPow(grp.H, proof.D2, grp.N)
	if err != nil {
		return ErrProofVerificationFailed
	}
	ec, err := common.ModPow(e, new(big.Int).Neg(c), grp.N)
	if err != nil {
		return ErrProofVerificationFailed
	}
	W := new(big.Int).Mul(gd, hd)
	W.Mul(W, ec).Mod(W, grp.N)

	if !responseInRange(params, proof.D1, c, b) || proof.C.Cmp(common.IntDigest(W)) != 0 {
		return ErrProofVerificationFailed
	}
	return nil
}

// responseInRange checks that D1 lies in [c*b, 2^(T+L)*b].
// w + cx < cb would reveal that x is smaller than the claimed maximum;
// w + cx > 2^(T+L)*b would admit an x beyond the proven interval.
func responseInRange(params SecurityParams, D1, c, b *big.Int) bool {
	lower := new(big.Int).Mul(c, b)
	upper := new(big.Int).Mul(common.PowerOfTwo(params.T+params.L), b)
	return D1.Cmp(lower) >= 0 && D1.Cmp(upper) <= 0
}

// NewSecureSource returns a randomness source suitable for Prove, backed by
// an AES-CTR generator seeded from the operating system. The source is safe
// for concurrent use.
func NewSecureSource() (io.Reader, error) {
	return common.NewSecureCPRNG()
}
