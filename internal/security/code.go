package security

import (
	"crypto/rand"
	"io"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomBytes generates cryptographically strong bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := io.ReadFull(rand.Reader, b)
	return b, err
}

// SessionCode generates an n-character code drawn uniformly from [A-Z0-9].
func SessionCode(n int) (string, error) {
	out := make([]byte, n)
	// Rejection sampling keeps the draw uniform over the 36-char alphabet.
	for i := 0; i < n; {
		b, err := RandomBytes(1)
		if err != nil {
			return "", err
		}
		if int(b[0]) >= 252 { // 252 = 36*7, largest multiple of 36 below 256
			continue
		}
		out[i] = codeAlphabet[int(b[0])%len(codeAlphabet)]
		i++
	}

	return string(out), nil
}
