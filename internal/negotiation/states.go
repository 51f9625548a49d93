// Package negotiation contains the pure business logic of the blind
// salary-range negotiation flow. It is transport- and storage-agnostic:
// the service layer drives it and persists the results.
//
// Valid status graph:
//
//	none ──► pending_candidate ──► matched            (terminal)
//	              │      ▲
//	              │      │ (renegotiate, while rounds remain)
//	              ▼      │
//	     no_match_low / no_match_high
//
// A negotiation also terminates implicitly when an unmatched offer has
// used up all of its rounds; the offer then leaves the range flow and is
// finalized with a fixed figure elsewhere in the product.
package negotiation

import "fmt"

// Status values mirror the match_status column on range_offers.
type Status string

const (
	StatusNone             Status = "none"
	StatusPendingCandidate Status = "pending_candidate"
	StatusMatched          Status = "matched"
	StatusNoMatchLow       Status = "no_match_low"
	StatusNoMatchHigh      Status = "no_match_high"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusNone:             {StatusPendingCandidate},
	StatusPendingCandidate: {StatusMatched, StatusNoMatchLow, StatusNoMatchHigh},
	StatusNoMatchLow:       {StatusPendingCandidate},
	StatusNoMatchHigh:      {StatusPendingCandidate},
	// matched is terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusNone, StatusPendingCandidate, StatusMatched, StatusNoMatchLow, StatusNoMatchHigh:
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by
// the state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further rounds are possible from the given
// status and round counter. matched always terminates; an unmatched round
// terminates once the round cap is reached.
func IsTerminal(st Status, round, maxRounds int) bool {
	switch st {
	case StatusMatched:
		return true
	case StatusNoMatchLow, StatusNoMatchHigh:
		return round >= maxRounds
	}
	return false
}

// CanStartRound reports whether the employer may move the offer into
// pending_candidate from its current status and round. The first send is
// only legal from none; a re-send (renegotiation) is only legal from an
// unmatched outcome while rounds remain.
func CanStartRound(st Status, round, maxRounds int) bool {
	if !IsTransitionAllowed(st, StatusPendingCandidate) {
		return false
	}
	return round < maxRounds
}
