package entity

import "time"

// UserSession binds a session id handed to a client to the user it authenticates.
type UserSession struct {
	SessionID string
	UserID    string
	CreatedAt time.Time
}

// ExpiresAt reports when the session stops being valid for the given time-to-live.
// A non-positive ttl means the session never expires and ok is false.
func (s *UserSession) ExpiresAt(ttl time.Duration) (at time.Time, ok bool) {
	if ttl <= 0 {
		return time.Time{}, false
	}

	return s.CreatedAt.Add(ttl), true
}
