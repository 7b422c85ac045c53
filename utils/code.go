package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CardCodeAlphabet is the character set of card codes.
const CardCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCardCode returns a random code of length n drawn uniformly from
// CardCodeAlphabet.
func GenerateCardCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid code length %d", n)
	}
	limit := big.NewInt(int64(len(CardCodeAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate card code: %w", err)
		}
		b[i] = CardCodeAlphabet[idx.Int64()]
	}
	return string(b), nil
}
