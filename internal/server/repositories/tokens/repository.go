package tokens

import (
	"context"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

// Repository persists candidate access tokens, keyed by the SHA-256 hash
// of the raw token value.
type Repository interface {
	// Create inserts a fresh token record.
	Create(ctx context.Context, token *models.CandidateToken) error

	// Find returns the token row regardless of its state, or
	// common.ErrNotFound. Used to tell "already consumed" apart from
	// "never existed" when classifying failures.
	Find(ctx context.Context, tokenHash string) (*models.CandidateToken, error)

	// FindActive returns the token only when it is unconsumed, unrevoked
	// and unexpired at now; otherwise common.ErrTokenInvalid.
	FindActive(ctx context.Context, tokenHash string, now time.Time) (*models.CandidateToken, error)

	// Consume atomically marks an active token consumed and returns it.
	// A token that is unknown, expired, revoked, or already consumed
	// yields common.ErrTokenInvalid and no mutation.
	Consume(ctx context.Context, tokenHash string, now time.Time) (*models.CandidateToken, error)

	// RevokeActive invalidates every outstanding token for the offer.
	// Issuing a new token always revokes its predecessors.
	RevokeActive(ctx context.Context, offerID string, now time.Time) error
}
