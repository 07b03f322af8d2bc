package cft

import "github.com/go-errors/errors"

// Failure taxonomy of the protocol. Every failure is terminal for the call
// that produced it; verification in particular is strictly accept-or-reject.
var (
	// ErrWitnessOutOfRange is returned by Prove when the committed number is
	// larger than the claimed maximum. It is raised before any randomness is
	// consumed.
	ErrWitnessOutOfRange = errors.New("committed number is larger than maximum")

	// ErrProofGenerationFailed is returned by Prove when the rejection
	// sampling budget is exhausted.
	ErrProofGenerationFailed = errors.New("proof generation retry budget exhausted")

	// ErrInvalidCommitment is returned by Verify for a commitment that is the
	// zero residue, which cannot be raised to a negative power.
	ErrInvalidCommitment = errors.New("commitment is the zero residue")

	// ErrProofVerificationFailed is returned by Verify whenever the proof
	// does not check out. Which check failed is deliberately not exposed.
	ErrProofVerificationFailed = errors.New("zero-knowledge proof validation failed")
)
