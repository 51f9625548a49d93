// Package tokens provides a PostgreSQL-backed repository for single-use
// candidate access tokens.
package tokens

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/dbx"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

// HashToken derives the storage key for a raw token. The raw value is
// never written to the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.CandidateToken) error {
	query := `
		INSERT INTO candidate_tokens (token_hash, offer_id, round, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, token.TokenHash, token.OfferID, token.Round, token.ExpiresAt); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, tokenHash string) (*models.CandidateToken, error) {
	query := `
		SELECT token_hash, offer_id, round, expires_at, consumed_at, revoked_at, created_at
		FROM candidate_tokens
		WHERE token_hash = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, tokenHash), common.ErrNotFound)
}

func (r *PostgresRepository) FindActive(ctx context.Context, tokenHash string, now time.Time) (*models.CandidateToken, error) {
	query := `
		SELECT token_hash, offer_id, round, expires_at, consumed_at, revoked_at, created_at
		FROM candidate_tokens
		WHERE token_hash = $1
		  AND consumed_at IS NULL
		  AND revoked_at IS NULL
		  AND expires_at > $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, tokenHash, now), common.ErrTokenInvalid)
}

func (r *PostgresRepository) Consume(ctx context.Context, tokenHash string, now time.Time) (*models.CandidateToken, error) {
	query := `
		UPDATE candidate_tokens
		SET consumed_at = $2
		WHERE token_hash = $1
		  AND consumed_at IS NULL
		  AND revoked_at IS NULL
		  AND expires_at > $2
		RETURNING token_hash, offer_id, round, expires_at, consumed_at, revoked_at, created_at
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, tokenHash, now), common.ErrTokenInvalid)
}

func (r *PostgresRepository) RevokeActive(ctx context.Context, offerID string, now time.Time) error {
	query := `
		UPDATE candidate_tokens
		SET revoked_at = $2
		WHERE offer_id = $1
		  AND consumed_at IS NULL
		  AND revoked_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, offerID, now); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row, missing error) (*models.CandidateToken, error) {
	token := &models.CandidateToken{}
	var consumed, revoked sql.NullTime
	err := row.Scan(
		&token.TokenHash, &token.OfferID, &token.Round,
		&token.ExpiresAt, &consumed, &revoked, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, missing
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if consumed.Valid {
		t := consumed.Time
		token.ConsumedAt = &t
	}
	if revoked.Valid {
		t := revoked.Time
		token.RevokedAt = &t
	}
	return token, nil
}
