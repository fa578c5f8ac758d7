package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Tanpa 0, O, 1, I, l agar password sementara mudah dibaca ulang.
const passwordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const TemporaryPasswordLength = 12

// GenerateRandomString menghasilkan string acak (CSPRNG) dari passwordCharset.
func GenerateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("random string length must be a positive integer, got %d", length)
	}

	out := make([]byte, length)
	charsetLen := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate cryptographically secure random number: %w", err)
		}
		out[i] = passwordCharset[idx.Int64()]
	}
	return string(out), nil
}

// GenerateTemporaryPassword dipakai saat admin membuat akun tanpa password.
func GenerateTemporaryPassword() (string, error) {
	return GenerateRandomString(TemporaryPasswordLength)
}
