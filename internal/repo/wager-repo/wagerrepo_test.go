package wagerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	expiresAt := time.Now().Add(72 * time.Hour)
	createdAt := time.Now()

	tests := []struct {
		name      string
		wagerID   int
		mockSetup func()
		expectErr bool
		result    *domain.Wager
	}{
		{
			name:    "Existing wager",
			wagerID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "text", "base_stake", "heat_requirement", "target_all", "status", "expires_at", "created_at"}).
					AddRow(7, "bet you can't", int64(20), 2, false, domain.WagerOpen, expiresAt, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wagers`)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: &domain.Wager{
				ID: 7, Text: "bet you can't", BaseStake: 20, HeatRequirement: 2,
				Status: domain.WagerOpen, ExpiresAt: expiresAt, CreatedAt: createdAt,
			},
		},
		{
			name:    "Unknown wager returns nil",
			wagerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wagers`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			wagerID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wagers`)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.wagerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	createdAt := time.Now()

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)

	wager := &domain.Wager{
		Text:            "bet you can't",
		BaseStake:       20,
		HeatRequirement: 2,
		Status:          domain.WagerOpen,
		ExpiresAt:       createdAt.Add(72 * time.Hour),
	}
	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wagers`)).
		WithArgs("bet you can't", int64(20), 2, false, domain.WagerOpen, wager.ExpiresAt).
		WillReturnRows(rows)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wager_participants`)).
		WithArgs(7, 1, int64(20)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wager_participants`)).
		WithArgs(7, 2, int64(20)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Save(context.Background(), wager, []int{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 7, wager.ID)
	assert.Equal(t, createdAt, wager.CreatedAt)
}

func TestRepository_RecordVote(t *testing.T) {
	repo, mock, _ := NewMock(t)
	votedAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		applied   bool
		expectErr bool
	}{
		{
			name: "First vote lands",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(10)
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (wager_id, user_id) DO UPDATE`)).
					WithArgs(7, 1, domain.VoteYes, int64(20), votedAt).
					WillReturnRows(rows)
			},
			applied: true,
		},
		{
			name: "Racing duplicate vote is a no-op",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (wager_id, user_id) DO UPDATE`)).
					WithArgs(7, 1, domain.VoteYes, int64(20), votedAt).
					WillReturnError(pgx.ErrNoRows)
			},
			applied: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (wager_id, user_id) DO UPDATE`)).
					WithArgs(7, 1, domain.VoteYes, int64(20), votedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			applied, err := repo.RecordVote(context.Background(), 7, 1, domain.VoteYes, 20, votedAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.applied, applied)
			}
		})
	}
}

func TestRepository_MarkExpired(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Open wager transitions", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(7)
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'expired'`)).
			WithArgs(7).
			WillReturnRows(rows)

		applied, err := repo.MarkExpired(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Already expired is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'expired'`)).
			WithArgs(7).
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.MarkExpired(context.Background(), 7)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_ClearStakeLock(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Locked stake is released once", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(10)
		mock.ExpectQuery(regexp.QuoteMeta(`SET stake_locked = FALSE`)).
			WithArgs(10).
			WillReturnRows(rows)

		applied, err := repo.ClearStakeLock(context.Background(), 10)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Second release is a no-op", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET stake_locked = FALSE`)).
			WithArgs(10).
			WillReturnError(pgx.ErrNoRows)

		applied, err := repo.ClearStakeLock(context.Background(), 10)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_FindExpired(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "text", "base_stake", "heat_requirement", "target_all", "status", "expires_at", "created_at"}).
		AddRow(7, "bet you can't", int64(20), 2, false, domain.WagerOpen, now.Add(-time.Hour), now.Add(-73*time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'open' AND expires_at <= $1`)).
		WithArgs(now, 1000).
		WillReturnRows(rows)

	wagers, err := repo.FindExpired(context.Background(), now, 1000)
	assert.NoError(t, err)
	assert.Len(t, wagers, 1)
	assert.Equal(t, 7, wagers[0].ID)
}

func TestRepository_GetVotedParticipants(t *testing.T) {
	repo, mock, _ := NewMock(t)
	votedAt := time.Now()
	yes, no := domain.VoteYes, domain.VoteNo

	rows := pgxmock.NewRows([]string{"id", "wager_id", "user_id", "vote", "stake_amount", "stake_locked", "voted_at"}).
		AddRow(10, 7, 1, &yes, int64(20), true, &votedAt).
		AddRow(11, 7, 2, &no, int64(25), true, &votedAt)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE wager_id = $1 AND vote IS NOT NULL`)).
		WithArgs(7).
		WillReturnRows(rows)

	participants, err := repo.GetVotedParticipants(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, participants, 2)
	assert.Equal(t, domain.VoteYes, *participants[0].Vote)
	assert.Equal(t, domain.VoteNo, *participants[1].Vote)
}
