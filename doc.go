// Package cft implements a non-interactive zero-knowledge proof that a
// Pedersen-style commitment E = g^x * h^r mod N hides a number x of bounded
// size, without revealing x or r.
//
// The protocol is described in section 1.2.3 of the paper:
// Fabrice Boudot, Efficient Proofs that a Committed Number Lies in an Interval.
// The interactive verifier is replaced by the Fiat-Shamir heuristic: the
// challenge is derived from a digest of the prover's masking value.
//
// The group setup (N, g, h) must come from a trusted party such that the
// factorization of N and the discrete logarithm of h with respect to g are
// unknown to both prover and verifier; producing it is outside the scope of
// this package.
package cft
