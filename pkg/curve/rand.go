package curve

import (
	"crypto/rand"
	"math/big"
)

// RandomScalar returns a cryptographically secure uniform scalar in
// [1, order). Zero is rejected and resampled, which keeps the distribution
// uniform over the nonzero scalars.
func (c *Curve) RandomScalar() (*big.Int, error) {
	// An order of 1 leaves no nonzero scalar to return.
	if c.order.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrOrderTooSmall
	}

	for {
		k, err := rand.Int(rand.Reader, c.order)
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
