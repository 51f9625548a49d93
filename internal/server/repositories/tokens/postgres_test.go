package tokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
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

func tokenRows(hash string, expires time.Time, consumed, revoked any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"token_hash", "offer_id", "round", "expires_at", "consumed_at", "revoked_at", "created_at",
	}).AddRow(hash, "o1", 1, expires, consumed, revoked, time.Now())
}

func TestHashToken_Deterministic(t *testing.T) {
	h1 := HashToken("raw-token")
	h2 := HashToken("raw-token")
	if h1 != h2 {
		t.Fatalf("hash not deterministic: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}
	if h1 == HashToken("other-token") {
		t.Fatalf("different tokens must not collide trivially")
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	expires := time.Now().Add(time.Hour)

	mock.ExpectExec(`INSERT INTO candidate_tokens`).
		WithArgs("hash1", "o1", 1, expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.CandidateToken{
		TokenHash: "hash1",
		OfferID:   "o1",
		Round:     1,
		ExpiresAt: expires,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFind_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM candidate_tokens WHERE token_hash = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFindActive_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	expires := now.Add(time.Hour)

	mock.ExpectQuery(`SELECT .* FROM candidate_tokens WHERE token_hash = \$1 AND consumed_at IS NULL`).
		WithArgs("hash1", now).
		WillReturnRows(tokenRows("hash1", expires, nil, nil))

	token, err := repo.FindActive(context.Background(), "hash1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.OfferID != "o1" || token.Round != 1 {
		t.Fatalf("token not scanned: %+v", token)
	}
	if token.ConsumedAt != nil || token.RevokedAt != nil {
		t.Fatalf("active token should have nil consumed/revoked: %+v", token)
	}
}

func TestFindActive_DeadToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM candidate_tokens`).
		WithArgs("hash1", now).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindActive(context.Background(), "hash1", now)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestConsume_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	expires := now.Add(time.Hour)

	mock.ExpectQuery(`UPDATE candidate_tokens SET consumed_at = \$2 WHERE token_hash = \$1 .* RETURNING`).
		WithArgs("hash1", now).
		WillReturnRows(tokenRows("hash1", expires, now, nil))

	token, err := repo.Consume(context.Background(), "hash1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.ConsumedAt == nil {
		t.Fatalf("consumed token must carry consumed_at")
	}
}

func TestConsume_AlreadySpentRowsEmpty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery(`UPDATE candidate_tokens SET consumed_at = \$2`).
		WithArgs("hash1", now).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Consume(context.Background(), "hash1", now)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestRevokeActive_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectExec(`UPDATE candidate_tokens SET revoked_at = \$2 WHERE offer_id = \$1`).
		WithArgs("o1", now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.RevokeActive(context.Background(), "o1", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
