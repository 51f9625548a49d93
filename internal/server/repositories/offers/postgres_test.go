package offers

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO range_offers`)

	mock.ExpectExec(q.String()).
		WithArgs("o1", "emp-1", "jane@example.com", "Senior Engineer", "Acme", "USD", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.RangeOffer{
		ID:                   "o1",
		EmployerID:           "emp-1",
		CandidateEmail:       "jane@example.com",
		PositionTitle:        "Senior Engineer",
		CompanyName:          "Acme",
		Currency:             "USD",
		MaxNegotiationRounds: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "employer_id", "candidate_email", "position_title", "company_name", "currency",
		"employer_min_cents", "employer_max_cents", "candidate_min_cents", "candidate_max_cents",
		"negotiation_round", "max_negotiation_rounds", "match_status", "matched_salary_cents",
		"created_at", "updated_at",
	}).AddRow(
		"o1", "emp-1", "jane@example.com", "Senior Engineer", "Acme", "USD",
		int64(14000000), int64(16000000), nil, nil,
		1, 3, "pending_candidate", nil,
		now, now,
	)

	mock.ExpectQuery(`SELECT .* FROM range_offers WHERE id = \$1`).
		WithArgs("o1").
		WillReturnRows(rows)

	offer, err := repo.GetByID(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.MatchStatus != negotiation.StatusPendingCandidate {
		t.Fatalf("want pending_candidate, got %v", offer.MatchStatus)
	}
	if offer.EmployerMin == nil || *offer.EmployerMin != 14000000 {
		t.Fatalf("employer_min not scanned: %v", offer.EmployerMin)
	}
	if offer.CandidateMin != nil {
		t.Fatalf("candidate_min should be nil, got %v", *offer.CandidateMin)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM range_offers WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetByID_CorruptStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "employer_id", "candidate_email", "position_title", "company_name", "currency",
		"employer_min_cents", "employer_max_cents", "candidate_min_cents", "candidate_max_cents",
		"negotiation_round", "max_negotiation_rounds", "match_status", "matched_salary_cents",
		"created_at", "updated_at",
	}).AddRow(
		"o1", "emp-1", "jane@example.com", "Senior Engineer", "Acme", "USD",
		nil, nil, nil, nil,
		0, 3, "bogus_status", nil,
		now, now,
	)

	mock.ExpectQuery(`SELECT .* FROM range_offers WHERE id = \$1`).
		WithArgs("o1").
		WillReturnRows(rows)

	_, err := repo.GetByID(context.Background(), "o1")
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestStartRound_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE range_offers SET .* WHERE id = \$1 AND match_status = \$5 AND negotiation_round = \$4 - 1`).
		WithArgs("o1", int64(14000000), int64(16000000), 1, "none").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.StartRound(context.Background(), "o1", 14000000, 16000000, 1, negotiation.StatusNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStartRound_LostRaceRowsAffected0(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE range_offers SET`).
		WithArgs("o1", int64(14000000), int64(16000000), 2, "no_match_low").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.StartRound(context.Background(), "o1", 14000000, 16000000, 2, negotiation.StatusNoMatchLow)
	if !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestApplySubmission_Matched(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	matched := int64(15500000)

	mock.ExpectExec(`UPDATE range_offers SET .* WHERE id = \$1 AND match_status = 'pending_candidate' AND negotiation_round = \$2`).
		WithArgs("o1", 1, int64(15000000), int64(17000000), "matched", matched).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplySubmission(context.Background(), "o1", 1, 15000000, 17000000, negotiation.StatusMatched, &matched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplySubmission_NoMatchKeepsSalaryNull(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE range_offers SET`).
		WithArgs("o1", 1, int64(16500000), int64(18000000), "no_match_low", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplySubmission(context.Background(), "o1", 1, 16500000, 18000000, negotiation.StatusNoMatchLow, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplySubmission_StaleRoundRowsAffected0(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE range_offers SET`).
		WithArgs("o1", 1, int64(15000000), int64(17000000), "matched", int64(15500000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	matched := int64(15500000)
	err := repo.ApplySubmission(context.Background(), "o1", 1, 15000000, 17000000, negotiation.StatusMatched, &matched)
	if !errors.Is(err, common.ErrAlreadySubmitted) {
		t.Fatalf("want ErrAlreadySubmitted, got %v", err)
	}
}

func TestApplySubmission_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE range_offers SET`).
		WithArgs("o1", 1, int64(15000000), int64(17000000), "no_match_high", nil).
		WillReturnError(errors.New("db is down"))

	err := repo.ApplySubmission(context.Background(), "o1", 1, 15000000, 17000000, negotiation.StatusNoMatchHigh, nil)
	if err == nil || !regexp.MustCompile(`db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
