package friendshiprepo

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

func inTxPassthrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

func friendshipRows(f *domain.Friendship) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "friend_id", "status",
		"heat_level", "heat_confirmed", "heat_changed_at",
		"proposed_level", "proposed_by", "proposed_at",
	}).AddRow(
		f.ID, f.UserID, f.FriendID, f.Status,
		f.HeatLevel, f.HeatConfirmed, f.HeatChangedAt,
		f.ProposedLevel, f.ProposedBy, f.ProposedAt,
	)
}

func TestRepository_GetDirected(t *testing.T) {
	repo, mock, _ := NewMock(t)
	changedAt := time.Now().Add(-48 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Friendship
	}{
		{
			name: "Existing directed row",
			mockSetup: func() {
				f := &domain.Friendship{
					ID: 1, UserID: 1, FriendID: 2, Status: domain.FriendshipAccepted,
					HeatLevel: 2, HeatConfirmed: true, HeatChangedAt: changedAt,
				}
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND friend_id = $2`)).
					WithArgs(1, 2).
					WillReturnRows(friendshipRows(f))
			},
			result: &domain.Friendship{
				ID: 1, UserID: 1, FriendID: 2, Status: domain.FriendshipAccepted,
				HeatLevel: 2, HeatConfirmed: true, HeatChangedAt: changedAt,
			},
		},
		{
			name: "Strangers return nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND friend_id = $2`)).
					WithArgs(1, 2).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND friend_id = $2`)).
					WithArgs(1, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetDirected(context.Background(), 1, 2)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreatePair(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	inTxPassthrough(txManager)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO friendships`)).
		WithArgs(1, 2, domain.FriendshipPending).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO friendships`)).
		WithArgs(2, 1, domain.FriendshipPending).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.CreatePair(context.Background(), 1, 2))
}

func TestRepository_AcceptPair(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	inTxPassthrough(txManager)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = $1`)).
		WithArgs(domain.FriendshipAccepted, 2, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	assert.NoError(t, repo.AcceptPair(context.Background(), 2, 1))
}

func TestRepository_UpdateHeatPair(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	changedAt := time.Now()
	level := 3
	proposedBy := 1
	proposedAt := time.Now()

	t.Run("Both directed rows get the same heat fields", func(t *testing.T) {
		inTxPassthrough(txManager)
		f := &domain.Friendship{
			HeatLevel: 2, HeatConfirmed: true, HeatChangedAt: changedAt,
			ProposedLevel: &level, ProposedBy: &proposedBy, ProposedAt: &proposedAt,
		}
		mock.ExpectExec(regexp.QuoteMeta(`SET heat_level = $1`)).
			WithArgs(2, true, changedAt, &level, &proposedBy, &proposedAt, 1, 2).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))

		assert.NoError(t, repo.UpdateHeatPair(context.Background(), 1, 2, f))
	})

	t.Run("Database error", func(t *testing.T) {
		inTxPassthrough(txManager)
		mock.ExpectExec(regexp.QuoteMeta(`SET heat_level = $1`)).
			WithArgs(1, false, changedAt, (*int)(nil), (*int)(nil), (*time.Time)(nil), 1, 2).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateHeatPair(context.Background(), 1, 2, &domain.Friendship{HeatLevel: 1, HeatChangedAt: changedAt})
		assert.Error(t, err)
	})
}

func TestRepository_FindMismatchedPairs(t *testing.T) {
	repo, mock, _ := NewMock(t)
	changedAt := time.Now()

	f := &domain.Friendship{
		ID: 1, UserID: 1, FriendID: 2, Status: domain.FriendshipAccepted,
		HeatLevel: 2, HeatConfirmed: true, HeatChangedAt: changedAt,
	}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.user_id < a.friend_id`)).
		WithArgs(1000).
		WillReturnRows(friendshipRows(f))

	pairs, err := repo.FindMismatchedPairs(context.Background(), 1000)
	assert.NoError(t, err)
	assert.Len(t, pairs, 1)
	assert.Equal(t, 2, pairs[0].HeatLevel)
}
