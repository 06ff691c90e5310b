package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// ==================== ACCESS KEY ====================

// GenerateAccessKey returns the opaque identifier used in shareable booking
// links. Random UUID, unique per booking.
func GenerateAccessKey() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== BOOKING PASSWORD ====================

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword creates a random alphanumeric secret of the given length.
// Uses crypto/rand: the password gates private booking access.
func GeneratePassword(length int) string {
	if length <= 0 {
		length = 15
	}

	max := big.NewInt(int64(len(passwordCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		out[i] = passwordCharset[n.Int64()]
	}

	return string(out)
}
