package password

import (
	"crypto/rand"

	"golang.org/x/crypto/bcrypt"
)

// Alphabet avoids ambiguous glyphs (0/O, 1/l/I) since the credential is
// delivered in a welcome message the user retypes once.
const alphabet = "23456789abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ"

const Length = 12

// Generate returns a one-time portal credential: the plaintext for the
// welcome notification and its bcrypt hash for the provisioning payload.
func Generate() (plaintext, hash string, err error) {
	buf := make([]byte, Length)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	plaintext = string(buf)

	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return plaintext, string(h), nil
}
