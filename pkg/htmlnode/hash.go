package htmlnode

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint renders n and returns the hex BLAKE3 digest of the output.
// Render errors are returned unchanged.
func Fingerprint(n Node) (string, error) {
	html, err := Render(n)
	if err != nil {
		return "", err
	}
	return HashString(html), nil
}

// HashString returns the hex BLAKE3 digest of s.
func HashString(s string) string {
	return HashBytes([]byte(s))
}

// HashBytes returns the hex BLAKE3 digest of b.
func HashBytes(b []byte) string {
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:])
}
