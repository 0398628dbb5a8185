package models

import "time"

// Session is the single unit of persisted authentication state. Token and
// user are always written and cleared together; there is never a token
// without its user record or the other way around.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAuthenticated derives solely from token presence.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}
