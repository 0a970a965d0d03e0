package curve

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/Caqil/ecclab/internal/math"
)

// hashToPointAttempts bounds the try-and-increment search. Roughly half of
// all x coordinates lie on the curve, so failing this many consecutive
// candidates is vanishingly unlikely for any honest prime field.
const hashToPointAttempts = 256

// HashToPoint deterministically maps a message to a point on the curve.
// dst is a domain separation tag keeping points derived for different
// purposes independent; it may be nil.
//
// The message is expanded to a candidate x coordinate with HKDF-SHA256, then
// consecutive x values are tried until one lies on the curve and its y is
// recovered by a modular square root (try-and-increment). The map is
// deterministic but not constant-time, which matches the rest of this
// library.
func (c *Curve) HashToPoint(msg, dst []byte) (Point, error) {
	// Oversample by 128 bits so the reduction mod p is close to uniform.
	byteLen := (c.p.BitLen()+7)/8 + 16

	reader := hkdf.New(sha256.New, msg, nil, dst)
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return Infinity(), err
	}

	x := new(big.Int).SetBytes(buf)
	x.Mod(x, c.p)

	for i := 0; i < hashToPointAttempts; i++ {
		// y² = x³ + ax + b
		y2 := new(big.Int).Mul(x, x)
		y2.Mul(y2, x)
		ax := new(big.Int).Mul(c.a, x)
		y2.Add(y2, ax)
		y2.Add(y2, c.b)
		y2.Mod(y2, c.p)

		if y, err := math.SqrtModP(y2, c.p); err == nil {
			return Point{x: x, y: y}, nil
		}

		x = new(big.Int).Add(x, big.NewInt(1))
		x.Mod(x, c.p)
	}

	return Infinity(), ErrHashToPointFailed
}
