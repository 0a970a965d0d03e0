package curve

import (
	"crypto/elliptic"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Named curves of cryptographic size. Their generator orders are far beyond
// what the brute-force walk can reach, so the published order is supplied and
// construction skips the walk entirely. The generic affine arithmetic still
// runs on them; it is correct but neither constant-time nor fast, so these
// presets are for cross-checking and experimentation, not production signing.

// Secp256k1 returns the Bitcoin/Ethereum curve y² = x³ + 7 with parameters
// taken from btcec.
func Secp256k1() (*Curve, error) {
	params := btcec.S256().Params()
	return NewWithConfig(&Config{
		Name:  "secp256k1",
		A:     big.NewInt(0),
		B:     params.B,
		P:     params.P,
		G:     NewPoint(params.Gx, params.Gy),
		Order: params.N,
	})
}

// P256 returns the NIST P-256 curve with parameters taken from
// crypto/elliptic. The standard library stores the curve as
// y² = x³ - 3x + b, so a is -3 mod p.
func P256() (*Curve, error) {
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, three)
	return NewWithConfig(&Config{
		Name:  "P-256",
		A:     a,
		B:     params.B,
		P:     params.P,
		G:     NewPoint(params.Gx, params.Gy),
		Order: params.N,
	})
}
