package offers

import (
	"context"
	"sync"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests and local
// development. It applies the same compare-and-set guards as the postgres
// implementation.
type InMemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.RangeOffer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*models.RangeOffer)}
}

func (r *InMemoryRepository) Create(_ context.Context, offer *models.RangeOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *offer
	clone.NegotiationRound = 0
	clone.MatchStatus = negotiation.StatusNone
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.byID[offer.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.RangeOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	offer, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *offer
	return &clone, nil
}

func (r *InMemoryRepository) StartRound(_ context.Context, id string, employerMin, employerMax int64, newRound int, expectStatus negotiation.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	offer, ok := r.byID[id]
	if !ok {
		return common.ErrInvalidTransition
	}
	if offer.MatchStatus != expectStatus ||
		offer.NegotiationRound != newRound-1 ||
		newRound > offer.MaxNegotiationRounds {
		return common.ErrInvalidTransition
	}
	offer.EmployerMin = &employerMin
	offer.EmployerMax = &employerMax
	offer.CandidateMin = nil
	offer.CandidateMax = nil
	offer.NegotiationRound = newRound
	offer.MatchStatus = negotiation.StatusPendingCandidate
	offer.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) ApplySubmission(_ context.Context, id string, round int, candidateMin, candidateMax int64, outcome negotiation.Status, matchedSalary *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	offer, ok := r.byID[id]
	if !ok {
		return common.ErrAlreadySubmitted
	}
	if offer.MatchStatus != negotiation.StatusPendingCandidate || offer.NegotiationRound != round {
		return common.ErrAlreadySubmitted
	}
	offer.CandidateMin = &candidateMin
	offer.CandidateMax = &candidateMax
	offer.MatchStatus = outcome
	if matchedSalary != nil {
		v := *matchedSalary
		offer.MatchedSalary = &v
	}
	offer.UpdatedAt = time.Now()
	return nil
}
