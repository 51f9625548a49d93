package negotiation_test

import (
	"testing"

	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
)

// ── ParseStatus ────────────────────────────────────────────────────────────

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"none", "pending_candidate", "matched", "no_match_low", "no_match_high"}
	for _, s := range valid {
		got, err := negotiation.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatus_InvalidValue(t *testing.T) {
	if _, err := negotiation.ParseStatus("MATCHED"); err == nil {
		t.Error("ParseStatus(\"MATCHED\") expected error, got nil")
	}
	if _, err := negotiation.ParseStatus(""); err == nil {
		t.Error("ParseStatus(\"\") expected error, got nil")
	}
}

// ── IsTransitionAllowed ────────────────────────────────────────────────────

func TestIsTransitionAllowed_ValidPairs(t *testing.T) {
	cases := []struct {
		from negotiation.Status
		to   negotiation.Status
	}{
		{negotiation.StatusNone, negotiation.StatusPendingCandidate},
		{negotiation.StatusPendingCandidate, negotiation.StatusMatched},
		{negotiation.StatusPendingCandidate, negotiation.StatusNoMatchLow},
		{negotiation.StatusPendingCandidate, negotiation.StatusNoMatchHigh},
		{negotiation.StatusNoMatchLow, negotiation.StatusPendingCandidate},
		{negotiation.StatusNoMatchHigh, negotiation.StatusPendingCandidate},
	}
	for _, c := range cases {
		if !negotiation.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s → %s) should be true", c.from, c.to)
		}
	}
}

func TestIsTransitionAllowed_MatchedIsTerminal(t *testing.T) {
	all := []negotiation.Status{
		negotiation.StatusNone,
		negotiation.StatusPendingCandidate,
		negotiation.StatusMatched,
		negotiation.StatusNoMatchLow,
		negotiation.StatusNoMatchHigh,
	}
	for _, to := range all {
		if negotiation.IsTransitionAllowed(negotiation.StatusMatched, to) {
			t.Errorf("IsTransitionAllowed(matched → %s) should be false", to)
		}
	}
}

func TestIsTransitionAllowed_InvalidPairs(t *testing.T) {
	cases := []struct {
		from negotiation.Status
		to   negotiation.Status
	}{
		{negotiation.StatusNone, negotiation.StatusMatched},
		{negotiation.StatusNone, negotiation.StatusNoMatchLow},
		{negotiation.StatusPendingCandidate, negotiation.StatusNone},
		{negotiation.StatusNoMatchLow, negotiation.StatusMatched},
		{negotiation.StatusNoMatchHigh, negotiation.StatusNoMatchLow},
	}
	for _, c := range cases {
		if negotiation.IsTransitionAllowed(c.from, c.to) {
			t.Errorf("IsTransitionAllowed(%s → %s) should be false", c.from, c.to)
		}
	}
}

// ── Round cap ──────────────────────────────────────────────────────────────

func TestCanStartRound_FirstSend(t *testing.T) {
	if !negotiation.CanStartRound(negotiation.StatusNone, 0, 3) {
		t.Error("first send from none/round 0 should be allowed")
	}
}

func TestCanStartRound_RenegotiateWithinCap(t *testing.T) {
	if !negotiation.CanStartRound(negotiation.StatusNoMatchLow, 1, 3) {
		t.Error("renegotiation at round 1 of 3 should be allowed")
	}
	if !negotiation.CanStartRound(negotiation.StatusNoMatchHigh, 2, 3) {
		t.Error("renegotiation at round 2 of 3 should be allowed")
	}
}

func TestCanStartRound_RoundCapReached(t *testing.T) {
	// Scenario: round 3 of 3 ended unmatched — no further rounds.
	if negotiation.CanStartRound(negotiation.StatusNoMatchLow, 3, 3) {
		t.Error("renegotiation at round 3 of 3 should be rejected")
	}
	if negotiation.CanStartRound(negotiation.StatusNoMatchHigh, 3, 3) {
		t.Error("renegotiation at round 3 of 3 should be rejected")
	}
}

func TestCanStartRound_NeverFromPendingOrMatched(t *testing.T) {
	if negotiation.CanStartRound(negotiation.StatusPendingCandidate, 1, 3) {
		t.Error("cannot start a round while one is pending")
	}
	if negotiation.CanStartRound(negotiation.StatusMatched, 1, 3) {
		t.Error("cannot start a round after a match")
	}
}

// ── IsTerminal ─────────────────────────────────────────────────────────────

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		st        negotiation.Status
		round     int
		maxRounds int
		want      bool
	}{
		{negotiation.StatusMatched, 1, 3, true},
		{negotiation.StatusNoMatchLow, 3, 3, true},
		{negotiation.StatusNoMatchHigh, 3, 3, true},
		{negotiation.StatusNoMatchLow, 2, 3, false},
		{negotiation.StatusPendingCandidate, 3, 3, false},
		{negotiation.StatusNone, 0, 3, false},
	}
	for _, c := range cases {
		if got := negotiation.IsTerminal(c.st, c.round, c.maxRounds); got != c.want {
			t.Errorf("IsTerminal(%s, %d, %d) = %v, want %v", c.st, c.round, c.maxRounds, got, c.want)
		}
	}
}
