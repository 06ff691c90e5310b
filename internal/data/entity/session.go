package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session backs the bearer-token middleware. Issuance lives in the external
// auth service; this API only validates tokens.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
