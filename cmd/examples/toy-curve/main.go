// Package main walks the textbook curve y² = x³ + 2x + 2 over F₁₇ and
// demonstrates the group operations on it.
package main

import (
	"fmt"
	"log"
	"math/big"

	"github.com/Caqil/ecclab/pkg/curve"
	"github.com/Caqil/ecclab/pkg/logger"
)

func main() {
	lg := logger.New(&logger.Config{Level: "debug", Pretty: true})

	c, err := curve.NewWithConfig(&curve.Config{
		Name:   "toy-17",
		A:      big.NewInt(2),
		B:      big.NewInt(2),
		P:      big.NewInt(17),
		G:      curve.NewPoint(big.NewInt(5), big.NewInt(1)),
		Logger: lg,
	})
	if err != nil {
		log.Fatalf("failed to construct curve: %v", err)
	}

	fmt.Printf("curve: y² = x³ + 2x + 2 over F_17, G = %s\n", c.Generator())
	fmt.Printf("order of G: %s\n\n", c.Order())

	fmt.Println("multiples of G:")
	order := c.Order().Int64()
	for k := int64(0); k <= order; k++ {
		fmt.Printf("  %2d·G = %s\n", k, c.ScalarBaseMult(big.NewInt(k)))
	}

	// Scalar multiplication is cyclic with period equal to the order.
	k := big.NewInt(3)
	wrapped := c.ScalarBaseMult(new(big.Int).Add(c.Order(), k))
	fmt.Printf("\n(order+3)·G = %s, 3·G = %s, equal: %v\n",
		wrapped, c.ScalarBaseMult(k), wrapped.Equal(c.ScalarBaseMult(k)))

	// Negative scalars reduce into the cycle too: -1·G = (order-1)·G = -G.
	minusG := c.ScalarBaseMult(big.NewInt(-1))
	fmt.Printf("-1·G = %s, -G = %s\n", minusG, c.Negate(c.Generator()))

	h, err := c.HashToPoint([]byte("hello curve"), []byte("toy-demo"))
	if err != nil {
		log.Fatalf("hash to point failed: %v", err)
	}
	fmt.Printf("\nhash-to-point(\"hello curve\") = %s, on curve: %v\n", h, c.IsOnCurve(h))

	r, err := c.RandomScalar()
	if err != nil {
		log.Fatalf("random scalar failed: %v", err)
	}
	fmt.Printf("random scalar %s -> %s\n", r, c.ScalarBaseMult(r))
}
