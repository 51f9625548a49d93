package offers

import (
	"context"

	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

// Repository persists RangeOffer records. Mutations are compare-and-set:
// each UPDATE carries the expected current status (and round) in its WHERE
// clause, so concurrent writers lose cleanly instead of double-applying.
type Repository interface {
	// Create inserts a fresh offer in status none at round 0.
	Create(ctx context.Context, offer *models.RangeOffer) error

	// GetByID returns the offer or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.RangeOffer, error)

	// StartRound moves the offer into pending_candidate with a new
	// employer range, clearing any previous candidate submission.
	// expectStatus/expectRound guard the transition; a lost race returns
	// common.ErrInvalidTransition.
	StartRound(ctx context.Context, id string, employerMin, employerMax int64, newRound int, expectStatus negotiation.Status) error

	// ApplySubmission records the candidate range and the computed
	// outcome for the given round. The offer must still be
	// pending_candidate at exactly that round; otherwise
	// common.ErrAlreadySubmitted is returned and nothing changes.
	ApplySubmission(ctx context.Context, id string, round int, candidateMin, candidateMax int64, outcome negotiation.Status, matchedSalary *int64) error
}
