package common

import (
	"github.com/multiformats/go-multihash"

	"github.com/verifierkit/cft/big"
	"github.com/verifierkit/cft/cbor"
)

// DigestBits is the bit length of the protocol digest. The challenge bit
// length of a parameter set must not exceed it.
const DigestBits = 256

// IntDigest computes the digest over a list of big integers and returns it as
// a non-negative integer. Prover and verifier must hash bit-identical input,
// so the encoding is fixed once, here: every value is rendered as its minimal
// big-endian magnitude bytes (all hashed values are residues mod N, hence
// non-negative), the list is encoded as a CBOR array of byte strings under
// Core Deterministic Encoding, and the encoding is hashed with SHA2-256,
// addressed by its multihash code. The raw digest bytes are interpreted
// big-endian.
func IntDigest(values ...*big.Int) *big.Int {
	enc := make([][]byte, len(values))
	for i, v := range values {
		if v != nil {
			enc[i] = v.Bytes()
		}
	}
	data, err := cbor.Marshal(enc)
	if err != nil {
		panic(err) // Marshal of byte strings should never error, so panic if it does
	}
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		panic(err)
	}
	decoded, err := multihash.Decode(sum)
	if err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(decoded.Digest)
}
