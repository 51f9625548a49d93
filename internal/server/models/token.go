package models

import "time"

// CandidateToken is one single-use candidate access credential. Only the
// SHA-256 hash of the raw token is ever stored; the raw value exists in
// the token URL handed to the mailer and nowhere else.
type CandidateToken struct {
	TokenHash  string
	OfferID    string
	Round      int
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// Usable reports whether the token can still be resolved at the given
// time. Expiry is evaluated lazily, at resolution.
func (t *CandidateToken) Usable(now time.Time) bool {
	return t.ConsumedAt == nil && t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
