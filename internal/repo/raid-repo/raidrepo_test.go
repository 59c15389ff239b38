package raidrepo

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

func raidRows(raid *domain.RaidAttempt) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "thief_id", "target_id", "steal_percentage", "potential_amount",
		"target_was_online", "defense_window_end", "was_defended",
		"status", "started_at", "completed_at",
	}).AddRow(
		raid.ID, raid.ThiefID, raid.TargetID, raid.StealPercentage, raid.PotentialAmount,
		raid.TargetWasOnline, raid.DefenseWindowEnd, raid.WasDefended,
		raid.Status, raid.StartedAt, raid.CompletedAt,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	startedAt := time.Now()
	windowEnd := startedAt.Add(16 * time.Second)

	t.Run("Existing raid", func(t *testing.T) {
		raid := &domain.RaidAttempt{
			ID: 5, ThiefID: 1, TargetID: 2, StealPercentage: 0.10, PotentialAmount: 100,
			TargetWasOnline: true, DefenseWindowEnd: &windowEnd,
			Status: domain.RaidInProgress, StartedAt: startedAt,
		}
		mock.ExpectQuery(regexp.QuoteMeta(`FROM raid_attempts`)).
			WithArgs(5).
			WillReturnRows(raidRows(raid))

		result, err := repo.FindByID(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, raid, result)
	})

	t.Run("Unknown raid returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM raid_attempts`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	startedAt := time.Now()
	windowEnd := startedAt.Add(16 * time.Second)

	raid := &domain.RaidAttempt{
		ThiefID: 1, TargetID: 2, StealPercentage: 0.10, PotentialAmount: 100,
		TargetWasOnline: true, DefenseWindowEnd: &windowEnd,
		Status: domain.RaidInProgress, StartedAt: startedAt,
	}
	rows := pgxmock.NewRows([]string{"id"}).AddRow(5)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO raid_attempts`)).
		WithArgs(1, 2, 0.10, int64(100), true, &windowEnd, domain.RaidInProgress, startedAt).
		WillReturnRows(rows)

	result, err := repo.Save(context.Background(), raid)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.ID)
}

func TestRepository_Defend(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Open window flips once", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(5)
		mock.ExpectQuery(regexp.QuoteMeta(`SET was_defended = TRUE`)).
			WithArgs(5, 2, now).
			WillReturnRows(rows)

		applied, err := repo.Defend(context.Background(), 5, 2, now)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Closed window is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET was_defended = TRUE`)).
			WithArgs(5, 2, now).
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.Defend(context.Background(), 5, 2, now)
		assert.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET was_defended = TRUE`)).
			WithArgs(5, 2, now).
			WillReturnError(errors.New("database error"))

		_, err := repo.Defend(context.Background(), 5, 2, now)
		assert.Error(t, err)
	})
}

func TestRepository_Claim(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Undefended raid inside the budget succeeds", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(5)
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'success'`)).
			WithArgs(5, 1, now, time.Minute).
			WillReturnRows(rows)

		applied, err := repo.Claim(context.Background(), 5, 1, now, time.Minute)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Defended or expired raid is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'success'`)).
			WithArgs(5, 1, now, time.Minute).
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.Claim(context.Background(), 5, 1, now, time.Minute)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_FindOverdue(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	raid := &domain.RaidAttempt{
		ID: 5, ThiefID: 1, TargetID: 2, StealPercentage: 0.10, PotentialAmount: 100,
		Status: domain.RaidInProgress, StartedAt: now.Add(-2 * time.Minute),
	}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'in_progress' AND started_at + $2 <= $1`)).
		WithArgs(now, time.Minute, 1000).
		WillReturnRows(raidRows(raid))

	raids, err := repo.FindOverdue(context.Background(), now, time.Minute, 1000)
	assert.NoError(t, err)
	assert.Len(t, raids, 1)
	assert.Equal(t, 5, raids[0].ID)
}

func TestRepository_TimeOut(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("In-progress raid closes", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(5)
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'timed_out'`)).
			WithArgs(5, now).
			WillReturnRows(rows)

		applied, err := repo.TimeOut(context.Background(), 5, now)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Already resolved is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'timed_out'`)).
			WithArgs(5, now).
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.TimeOut(context.Background(), 5, now)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}
