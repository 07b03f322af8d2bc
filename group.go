package cft

import (
	"github.com/verifierkit/cft/big"
	"github.com/verifierkit/cft/internal/common"
)

// GroupParams is the public group setup shared by prover and verifier: a
// large composite modulus N whose factorization is unknown to both parties,
// an element g of large order in (Z/NZ)*, and an element h of the subgroup
// generated by g such that nobody knows log_g(h).
type GroupParams struct {
	N *big.Int `json:"n"`
	G *big.Int `json:"g"`
	H *big.Int `json:"h"`
}

// NewGroupParams copies the given setup values into a GroupParams.
func NewGroupParams(N, g, h *big.Int) GroupParams {
	return GroupParams{
		N: new(big.Int).Set(N),
		G: new(big.Int).Set(g),
		H: new(big.Int).Set(h),
	}
}

// Commit computes the Pedersen-style commitment E = g^x * h^r mod N hiding x
// under the blinding factor r. The blinding factor may be negative.
func Commit(grp *GroupParams, x, r *big.Int) (*big.Int, error) {
	gx, err := common.ModPow(grp.G, x, grp.N)
	if err != nil {
		return nil, err
	}
	hr, err := common.ModPow(grp.H, r, grp.N)
	if err != nil {
		return nil, err
	}
	E := new(big.Int).Mul(gx, hr)
	return E.Mod(E, grp.N), nil
}
