package clashrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func clashRows(c *domain.Clash) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "wager_id", "yes_user_id", "no_user_id", "yes_stake", "no_stake",
		"total_pot", "prover_id", "proof_deadline", "status",
		"proof_ref", "winner_id", "dispute_reason", "created_at",
	}).AddRow(
		c.ID, c.WagerID, c.YesUserID, c.NoUserID, c.YesStake, c.NoStake,
		c.TotalPot, c.ProverID, c.ProofDeadline, c.Status,
		c.ProofRef, c.WinnerID, c.DisputeReason, c.CreatedAt,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	deadline := time.Now().Add(24 * time.Hour)

	t.Run("Existing clash", func(t *testing.T) {
		clash := &domain.Clash{
			ID: 3, WagerID: 7, YesUserID: 1, NoUserID: 2,
			YesStake: 20, NoStake: 25, TotalPot: 45, ProverID: 1,
			ProofDeadline: deadline, Status: domain.ClashPendingProof,
		}
		mock.ExpectQuery(regexp.QuoteMeta(`FROM clashes`)).
			WithArgs(3).
			WillReturnRows(clashRows(clash))

		result, err := repo.FindByID(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, clash, result)
	})

	t.Run("Unknown clash returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM clashes`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_CreateOrGet(t *testing.T) {
	deadline := time.Now().Add(24 * time.Hour)
	createdAt := time.Now()
	clash := func() *domain.Clash {
		return &domain.Clash{
			WagerID: 7, YesUserID: 1, NoUserID: 2,
			YesStake: 20, NoStake: 25, TotalPot: 45, ProverID: 1,
			ProofDeadline: deadline, Status: domain.ClashPendingProof,
		}
	}

	t.Run("First creation wins", func(t *testing.T) {
		repo, mock := NewMock(t)

		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clashes`)).
			WithArgs(7, 1, 2, int64(20), int64(25), int64(45), 1, deadline, domain.ClashPendingProof).
			WillReturnRows(rows)

		result, created, err := repo.CreateOrGet(context.Background(), clash())
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 3, result.ID)
		assert.Equal(t, createdAt, result.CreatedAt)
	})

	t.Run("Racing creation lands on the existing row", func(t *testing.T) {
		repo, mock := NewMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clashes`)).
			WithArgs(7, 1, 2, int64(20), int64(25), int64(45), 1, deadline, domain.ClashPendingProof).
			WillReturnError(pgx.ErrNoRows)
		existing := clash()
		existing.ID = 3
		existing.CreatedAt = createdAt
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE wager_id = $1`)).
			WithArgs(7).
			WillReturnRows(clashRows(existing))

		result, created, err := repo.CreateOrGet(context.Background(), clash())
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 3, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clashes`)).
			WithArgs(7, 1, 2, int64(20), int64(25), int64(45), 1, deadline, domain.ClashPendingProof).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.CreateOrGet(context.Background(), clash())
		assert.Error(t, err)
	})
}

func TestRepository_SubmitProof(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Pending clash accepts the proof", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(3)
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'proof_submitted'`)).
			WithArgs(3, "https://example.com/proof.jpg").
			WillReturnRows(rows)

		applied, err := repo.SubmitProof(context.Background(), 3, "https://example.com/proof.jpg")
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Second submission is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'proof_submitted'`)).
			WithArgs(3, "https://example.com/proof.jpg").
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.SubmitProof(context.Background(), 3, "https://example.com/proof.jpg")
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Submitted clash settles", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(3)
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'completed'`)).
			WithArgs(3, 1).
			WillReturnRows(rows)

		applied, err := repo.Complete(context.Background(), 3, 1)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Already settled is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'completed'`)).
			WithArgs(3, 1).
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.Complete(context.Background(), 3, 1)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_Dispute(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id"}).AddRow(3)
	mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'disputed'`)).
		WithArgs(3, "photo is from last year").
		WillReturnRows(rows)

	applied, err := repo.Dispute(context.Background(), 3, "photo is from last year")
	assert.NoError(t, err)
	assert.True(t, applied)
}
