package repomanager

import (
	"context"

	"github.com/tajaa/matcha-recruit-sub001/internal/dbx"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/offers"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/tokens"
)

// InMemoryRepositoryManager backs the repositories with process-local
// maps. There is no real transaction: InTransaction simply runs fn, and
// the CAS guards in the repositories provide the at-most-once semantics
// the tests care about.
type InMemoryRepositoryManager struct {
	offers *offers.InMemoryRepository
	tokens *tokens.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		offers: offers.NewInMemoryRepository(),
		tokens: tokens.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Offers(_ dbx.DBTX) offers.Repository { return m.offers }

func (m *InMemoryRepositoryManager) Tokens(_ dbx.DBTX) tokens.Repository { return m.tokens }

func (m *InMemoryRepositoryManager) InTransaction(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Close() error { return nil }
