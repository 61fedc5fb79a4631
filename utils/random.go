package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomInt returns a crypto-random integer uniformly distributed over
// [min, max], inclusive on both ends.
func RandomInt(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("invalid range [%d, %d]", min, max)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}

	return min + n.Int64(), nil
}
