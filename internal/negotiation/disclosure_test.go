package negotiation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
)

func TestDiscloseToEmployer_NoCandidateNumbersBeforeMatch(t *testing.T) {
	for _, st := range []negotiation.Status{
		negotiation.StatusNone,
		negotiation.StatusPendingCandidate,
		negotiation.StatusNoMatchLow,
		negotiation.StatusNoMatchHigh,
	} {
		d := negotiation.DiscloseToEmployer(st, 155000)
		assert.Nil(t, d.MatchedSalary, "status %s must not reveal a salary figure", st)
		assert.NotEmpty(t, d.Message)
	}
}

func TestDiscloseToEmployer_Matched(t *testing.T) {
	d := negotiation.DiscloseToEmployer(negotiation.StatusMatched, 155000)
	require.NotNil(t, d.MatchedSalary)
	assert.Equal(t, int64(155000), *d.MatchedSalary)
}

func TestDiscloseToEmployer_DirectionHints(t *testing.T) {
	low := negotiation.DiscloseToEmployer(negotiation.StatusNoMatchLow, 0)
	high := negotiation.DiscloseToEmployer(negotiation.StatusNoMatchHigh, 0)
	assert.Contains(t, low.Message, "too low")
	assert.Contains(t, high.Message, "too high")
}

func TestDiscloseToCandidate_RangeOnlyWhilePending(t *testing.T) {
	pending := negotiation.DiscloseToCandidate(negotiation.StatusPendingCandidate, 0)
	assert.True(t, pending.ShowOfferedRange)
	assert.Nil(t, pending.MatchedSalary)

	for _, st := range []negotiation.Status{
		negotiation.StatusNoMatchLow,
		negotiation.StatusNoMatchHigh,
		negotiation.StatusMatched,
	} {
		d := negotiation.DiscloseToCandidate(st, 155000)
		assert.False(t, d.ShowOfferedRange, "status %s must not re-disclose the employer range", st)
	}
}

func TestDiscloseToCandidate_NoDirectionLeak(t *testing.T) {
	// The candidate gets the same wording either way: direction would
	// reveal where the employer's range sits.
	low := negotiation.DiscloseToCandidate(negotiation.StatusNoMatchLow, 0)
	high := negotiation.DiscloseToCandidate(negotiation.StatusNoMatchHigh, 0)
	assert.Equal(t, low.Message, high.Message)
	assert.Nil(t, low.MatchedSalary)
	assert.Nil(t, high.MatchedSalary)
}

func TestDiscloseToCandidate_Matched(t *testing.T) {
	d := negotiation.DiscloseToCandidate(negotiation.StatusMatched, 150000)
	require.NotNil(t, d.MatchedSalary)
	assert.Equal(t, int64(150000), *d.MatchedSalary)
}
