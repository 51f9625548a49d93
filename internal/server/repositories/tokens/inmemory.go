package tokens

import (
	"context"
	"sync"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests and local
// development. Consumption is guarded by the repository mutex, so the
// single-use property holds under concurrent submissions.
type InMemoryRepository struct {
	mu     sync.Mutex
	byHash map[string]*models.CandidateToken
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byHash: make(map[string]*models.CandidateToken)}
}

func (r *InMemoryRepository) Create(_ context.Context, token *models.CandidateToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now()
	}
	r.byHash[token.TokenHash] = &clone
	return nil
}

func (r *InMemoryRepository) Find(_ context.Context, tokenHash string) (*models.CandidateToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.byHash[tokenHash]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *token
	return &clone, nil
}

func (r *InMemoryRepository) FindActive(_ context.Context, tokenHash string, now time.Time) (*models.CandidateToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.byHash[tokenHash]
	if !ok || !token.Usable(now) {
		return nil, common.ErrTokenInvalid
	}
	clone := *token
	return &clone, nil
}

func (r *InMemoryRepository) Consume(_ context.Context, tokenHash string, now time.Time) (*models.CandidateToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.byHash[tokenHash]
	if !ok || !token.Usable(now) {
		return nil, common.ErrTokenInvalid
	}
	t := now
	token.ConsumedAt = &t
	clone := *token
	return &clone, nil
}

func (r *InMemoryRepository) RevokeActive(_ context.Context, offerID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, token := range r.byHash {
		if token.OfferID == offerID && token.Usable(now) {
			t := now
			token.RevokedAt = &t
		}
	}
	return nil
}
