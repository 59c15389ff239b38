package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/betcha-app/betcha/internal/domain"
	ledgerrepo "github.com/betcha-app/betcha/internal/repo/ledger-repo"
	"github.com/betcha-app/betcha/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func inTxPassthrough(repo *MockRepo) {
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(500), nil)
			},
			expectedBalance: 500,
		},
		{
			name:   "Unknown user",
			userID: 42,
			prepareMock: func() {
				repo.EXPECT().GetBalance(gomock.Any(), 42).Return(int64(0), ledgerrepo.ErrNotApplied)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "Database error",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestLock(t *testing.T) {
	ref := domain.Ref{Type: domain.RefWager, ID: 7}

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name:   "Stake locked and recorded",
			amount: 20,
			prepareMock: func(repo *MockRepo) {
				inTxPassthrough(repo)
				repo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-20)).Return(int64(480), nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), &domain.Transaction{
					UserID:           1,
					Amount:           -20,
					ResultingBalance: 480,
					Type:             domain.TxStakeLock,
					RefType:          domain.RefWager,
					RefID:            7,
				}).Return(&domain.Transaction{ID: 1}, nil)
			},
		},
		{
			name:   "Insufficient funds",
			amount: 1000,
			prepareMock: func(repo *MockRepo) {
				inTxPassthrough(repo)
				repo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-1000)).Return(int64(0), ledgerrepo.ErrNotApplied)
				repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(500), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:   "Unknown user",
			amount: 20,
			prepareMock: func(repo *MockRepo) {
				inTxPassthrough(repo)
				repo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-20)).Return(int64(0), ledgerrepo.ErrNotApplied)
				repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(0), ledgerrepo.ErrNotApplied)
			},
			expectedError: ErrNotFound,
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount cannot turn a lock into a credit",
			amount:        -50,
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			err := service.Lock(context.Background(), 1, tt.amount, ref)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)
	ref := domain.Ref{Type: domain.RefClash, ID: 3}

	inTxPassthrough(repo)
	repo.EXPECT().ApplyDelta(gomock.Any(), 2, int64(40)).Return(int64(540), nil)
	repo.EXPECT().CreateTransaction(gomock.Any(), &domain.Transaction{
		UserID:           2,
		Amount:           40,
		ResultingBalance: 540,
		Type:             domain.TxPotPayout,
		RefType:          domain.RefClash,
		RefID:            3,
	}).Return(&domain.Transaction{ID: 2}, nil)

	err := service.Credit(context.Background(), 2, 40, domain.TxPotPayout, ref)
	assert.NoError(t, err)

	assert.ErrorIs(t, service.Credit(context.Background(), 2, -40, domain.TxPotPayout, ref), ErrInvalidAmount)
	assert.ErrorIs(t, service.Debit(context.Background(), 2, -40, domain.TxPotPayout, ref), ErrInvalidAmount)
}

func TestPenalize(t *testing.T) {
	ref := domain.Ref{Type: domain.RefRaid, ID: 5}

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func(repo *MockRepo)
		expectedTaken int64
		expectedError error
	}{
		{
			name:   "Full penalty taken",
			amount: 100,
			prepareMock: func(repo *MockRepo) {
				inTxPassthrough(repo)
				repo.EXPECT().ApplyDeltaClamped(gomock.Any(), 1, int64(-100)).Return(int64(400), int64(-100), nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), &domain.Transaction{
					UserID:           1,
					Amount:           -100,
					ResultingBalance: 400,
					Type:             domain.TxRaidPenalty,
					RefType:          domain.RefRaid,
					RefID:            5,
				}).Return(&domain.Transaction{ID: 3}, nil)
			},
			expectedTaken: 100,
		},
		{
			name:   "Penalty clamped to balance",
			amount: 1000,
			prepareMock: func(repo *MockRepo) {
				inTxPassthrough(repo)
				repo.EXPECT().ApplyDeltaClamped(gomock.Any(), 1, int64(-1000)).Return(int64(0), int64(-500), nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), &domain.Transaction{
					UserID:           1,
					Amount:           -500,
					ResultingBalance: 0,
					Type:             domain.TxRaidPenalty,
					RefType:          domain.RefRaid,
					RefID:            5,
				}).Return(&domain.Transaction{ID: 4}, nil)
			},
			expectedTaken: 500,
		},
		{
			name:   "Nothing to take, no ledger entry",
			amount: 100,
			prepareMock: func(repo *MockRepo) {
				inTxPassthrough(repo)
				repo.EXPECT().ApplyDeltaClamped(gomock.Any(), 1, int64(-100)).Return(int64(0), int64(0), nil)
			},
			expectedTaken: 0,
		},
		{
			name:          "Non-positive amount rejected",
			amount:        0,
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			taken, err := service.Penalize(context.Background(), 1, tt.amount, domain.TxRaidPenalty, ref)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTaken, taken)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, repo := NewMock(t)

	txs := []domain.Transaction{
		{ID: 2, UserID: 1, Amount: -20, ResultingBalance: 480, Type: domain.TxStakeLock},
		{ID: 1, UserID: 1, Amount: 500, ResultingBalance: 500, Type: domain.TxSeed},
	}
	repo.EXPECT().GetTransactionsByUserID(gomock.Any(), 1).Return(txs, nil)

	got, err := service.GetTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, txs, got)
}
