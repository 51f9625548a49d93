// Package repomanager wires the concrete repositories to one storage
// backend and exposes transaction scoping to the service layer.
package repomanager

import (
	"context"

	"github.com/tajaa/matcha-recruit-sub001/internal/dbx"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/offers"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/tokens"
)

// RepositoryManager hands out repositories bound to a DBTX, so the same
// repository code runs against the pool or inside a transaction started
// by InTransaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error

	// Offers and Tokens return repositories bound to db. Passing nil
	// binds them to the manager's default connection.
	Offers(db dbx.DBTX) offers.Repository
	Tokens(db dbx.DBTX) tokens.Repository

	// InTransaction runs fn inside one storage transaction; fn receives
	// the transactional handle to pass back into Offers/Tokens.
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error

	Close() error
}
