// Package offers provides a PostgreSQL-backed repository for range offer
// negotiation records.
package offers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/dbx"
	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, offer *models.RangeOffer) error {
	query := `
		INSERT INTO range_offers
			(id, employer_id, candidate_email, position_title, company_name, currency,
			 negotiation_round, max_negotiation_rounds, match_status)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, 'none')
	`
	_, err := r.db.ExecContext(ctx, query,
		offer.ID, offer.EmployerID, offer.CandidateEmail,
		offer.PositionTitle, offer.CompanyName, offer.Currency,
		offer.MaxNegotiationRounds,
	)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.RangeOffer, error) {
	query := `
		SELECT id, employer_id, candidate_email, position_title, company_name, currency,
		       employer_min_cents, employer_max_cents, candidate_min_cents, candidate_max_cents,
		       negotiation_round, max_negotiation_rounds, match_status, matched_salary_cents,
		       created_at, updated_at
		FROM range_offers
		WHERE id = $1
	`
	offer := &models.RangeOffer{}
	var (
		eMin, eMax, cMin, cMax, matched sql.NullInt64
		status                          string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.EmployerID, &offer.CandidateEmail,
		&offer.PositionTitle, &offer.CompanyName, &offer.Currency,
		&eMin, &eMax, &cMin, &cMax,
		&offer.NegotiationRound, &offer.MaxNegotiationRounds, &status, &matched,
		&offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	st, err := negotiation.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("corrupt offer row: %w", err)
	}
	offer.MatchStatus = st
	offer.EmployerMin = nullableInt64(eMin)
	offer.EmployerMax = nullableInt64(eMax)
	offer.CandidateMin = nullableInt64(cMin)
	offer.CandidateMax = nullableInt64(cMax)
	offer.MatchedSalary = nullableInt64(matched)
	return offer, nil
}

func (r *PostgresRepository) StartRound(ctx context.Context, id string, employerMin, employerMax int64, newRound int, expectStatus negotiation.Status) error {
	query := `
		UPDATE range_offers
		SET employer_min_cents = $2,
		    employer_max_cents = $3,
		    candidate_min_cents = NULL,
		    candidate_max_cents = NULL,
		    negotiation_round = $4,
		    match_status = 'pending_candidate',
		    updated_at = now()
		WHERE id = $1
		  AND match_status = $5
		  AND negotiation_round = $4 - 1
		  AND $4 <= max_negotiation_rounds
	`
	res, err := r.db.ExecContext(ctx, query, id, employerMin, employerMax, newRound, string(expectStatus))
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrInvalidTransition
	}
	return nil
}

func (r *PostgresRepository) ApplySubmission(ctx context.Context, id string, round int, candidateMin, candidateMax int64, outcome negotiation.Status, matchedSalary *int64) error {
	query := `
		UPDATE range_offers
		SET candidate_min_cents = $3,
		    candidate_max_cents = $4,
		    match_status = $5,
		    matched_salary_cents = $6,
		    updated_at = now()
		WHERE id = $1
		  AND match_status = 'pending_candidate'
		  AND negotiation_round = $2
	`
	var matched sql.NullInt64
	if matchedSalary != nil {
		matched = sql.NullInt64{Int64: *matchedSalary, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, query, id, round, candidateMin, candidateMax, string(outcome), matched)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrAlreadySubmitted
	}
	return nil
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
