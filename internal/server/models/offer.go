package models

import (
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
)

// RangeOffer is the persistent state of one offer's blind range
// negotiation. All monetary amounts are minor units (cents) of Currency.
// Nullable columns are pointers: the employer range is unset until the
// first send, the candidate range only exists between a submission and
// the next round, and MatchedSalary is set exactly once, on match.
type RangeOffer struct {
	ID             string
	EmployerID     string
	CandidateEmail string
	PositionTitle  string
	CompanyName    string
	Currency       string

	EmployerMin  *int64
	EmployerMax  *int64
	CandidateMin *int64
	CandidateMax *int64

	NegotiationRound     int
	MaxNegotiationRounds int
	MatchStatus          negotiation.Status
	MatchedSalary        *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
