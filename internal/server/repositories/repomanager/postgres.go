package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tajaa/matcha-recruit-sub001/internal/dbx"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/migrations"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/offers"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/tokens"
)

type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager opens the database via the pgx stdlib
// driver and applies pending migrations.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{db: db}
	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return m, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Offers(db dbx.DBTX) offers.Repository {
	if db == nil {
		db = m.db
	}
	return offers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	if db == nil {
		db = m.db
	}
	return tokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) InTransaction(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, m.db, nil, fn)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
