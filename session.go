package valutatrade

import (
	"time"

	"github.com/google/uuid"
)

// Session is the proof of a successful login. Every operation acting on
// behalf of a user takes it explicitly; there is no process-wide current
// user.
type Session struct {
	Token     string    `json:"token"`
	AccountID int       `json:"user_id"`
	Username  string    `json:"username"`
	Started   time.Time `json:"started"`
}

func newSession(a *Account, now time.Time) *Session {
	return &Session{
		Token:     uuid.NewString(),
		AccountID: a.id,
		Username:  a.name,
		Started:   now,
	}
}
