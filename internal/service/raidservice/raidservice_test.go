package raidservice

import (
	"context"
	"testing"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/notify"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var frozenTime = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

type mocks struct {
	repo      *MockRepo
	userRepo  *MockUserRepo
	ledger    *MockLedger
	publisher *notify.MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockRepo(ctrl),
		userRepo:  NewMockUserRepo(ctrl),
		ledger:    NewMockLedger(ctrl),
		publisher: notify.NewMockPublisher(ctrl),
	}
	service := New(m.repo, m.userRepo, m.ledger, m.publisher, 16*time.Second, time.Minute)
	service.now = func() time.Time { return frozenTime }
	defer ctrl.Finish()
	return service, m
}

func timeptr(ts time.Time) *time.Time { return &ts }

func TestStealPercentage(t *testing.T) {
	assert.InDelta(t, 0.10, stealPercentage(0), 1e-9)
	assert.InDelta(t, 0.16, stealPercentage(3), 1e-9)
	assert.InDelta(t, 0.50, stealPercentage(20), 1e-9)
	assert.InDelta(t, 0.50, stealPercentage(100), 1e-9)
}

func TestInitiate(t *testing.T) {
	tests := []struct {
		name          string
		targetID      int
		prepareMock   func(m *mocks)
		check         func(t *testing.T, raid *domain.RaidAttempt)
		expectedError error
	}{
		{
			name:          "Self raid rejected",
			targetID:      1,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrSelfRaid,
		},
		{
			name:     "Online target gets a defense window",
			targetID: 2,
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Wins: 5}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{
					ID: 2, Balance: 1000, LastSeenAt: timeptr(frozenTime.Add(-30 * time.Second)),
				}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, raid *domain.RaidAttempt) (*domain.RaidAttempt, error) {
						raid.ID = 5
						return raid, nil
					},
				)
				m.userRepo.EXPECT().AddStats(gomock.Any(), 1, domain.Stats{RaidsAttempted: 1}).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, raid *domain.RaidAttempt) {
				assert.InDelta(t, 0.20, raid.StealPercentage, 1e-9)
				assert.Equal(t, int64(200), raid.PotentialAmount)
				assert.True(t, raid.TargetWasOnline)
				assert.NotNil(t, raid.DefenseWindowEnd)
				assert.Equal(t, frozenTime.Add(16*time.Second), *raid.DefenseWindowEnd)
			},
		},
		{
			name:     "Offline target cannot be caught",
			targetID: 2,
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{
					ID: 2, Balance: 1000, LastSeenAt: timeptr(frozenTime.Add(-time.Hour)),
				}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, raid *domain.RaidAttempt) (*domain.RaidAttempt, error) {
						raid.ID = 5
						return raid, nil
					},
				)
				m.userRepo.EXPECT().AddStats(gomock.Any(), 1, domain.Stats{RaidsAttempted: 1}).Return(nil)
			},
			check: func(t *testing.T, raid *domain.RaidAttempt) {
				assert.False(t, raid.TargetWasOnline)
				assert.Nil(t, raid.DefenseWindowEnd)
			},
		},
		{
			name:     "Broke target has nothing to steal",
			targetID: 2,
			prepareMock: func(m *mocks) {
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Balance: 0}, nil)
			},
			expectedError: ErrNothingToSteal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			raid, err := service.Initiate(context.Background(), 1, tt.targetID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			tt.check(t, raid)
		})
	}
}

func inProgressRaid() *domain.RaidAttempt {
	return &domain.RaidAttempt{
		ID:               5,
		ThiefID:          1,
		TargetID:         2,
		StealPercentage:  0.10,
		PotentialAmount:  100,
		TargetWasOnline:  true,
		DefenseWindowEnd: timeptr(frozenTime.Add(10 * time.Second)),
		Status:           domain.RaidInProgress,
		StartedAt:        frozenTime.Add(-5 * time.Second),
	}
}

func TestDefend(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "Catch inside the window costs the thief double",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
				m.repo.EXPECT().Defend(gomock.Any(), 5, 2, frozenTime).Return(true, nil)
				m.ledger.EXPECT().Penalize(gomock.Any(), 1, int64(200), domain.TxRaidPenalty, domain.Ref{Type: domain.RefRaid, ID: 5}).Return(int64(200), nil)
				m.userRepo.EXPECT().AddStats(gomock.Any(), 2, domain.Stats{RaidsDefended: 1}).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
				defended := inProgressRaid()
				defended.Status = domain.RaidDefended
				defended.WasDefended = true
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(defended, nil)
			},
		},
		{
			name:   "Only the target can defend",
			userID: 3,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
			},
			expectedError: ErrNotAuthorized,
		},
		{
			name:   "Window closed",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
				m.repo.EXPECT().Defend(gomock.Any(), 5, 2, frozenTime).Return(false, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
			},
			expectedError: ErrWindowClosed,
		},
		{
			name:   "Raid already resolved",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
				m.repo.EXPECT().Defend(gomock.Any(), 5, 2, frozenTime).Return(false, nil)
				done := inProgressRaid()
				done.Status = domain.RaidSuccess
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(done, nil)
			},
			expectedError: ErrRaidClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			_, err := service.Defend(context.Background(), 5, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClaim(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "Successful claim moves the loot",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
				m.repo.EXPECT().Claim(gomock.Any(), 5, 1, frozenTime, time.Minute).Return(true, nil)
				ref := domain.Ref{Type: domain.RefRaid, ID: 5}
				m.ledger.EXPECT().Debit(gomock.Any(), 2, int64(100), domain.TxRaidLoss, ref).Return(nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(100), domain.TxRaidLoot, ref).Return(nil)
				m.userRepo.EXPECT().AddStats(gomock.Any(), 2, domain.Stats{RaidsSuffered: 1}).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
				done := inProgressRaid()
				done.Status = domain.RaidSuccess
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(done, nil)
			},
		},
		{
			name:   "Only the thief can claim",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
			},
			expectedError: ErrNotAuthorized,
		},
		{
			name:   "Claim racing a defend loses",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
				m.repo.EXPECT().Claim(gomock.Any(), 5, 1, frozenTime, time.Minute).Return(false, nil)
				defended := inProgressRaid()
				defended.WasDefended = true
				defended.Status = domain.RaidDefended
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(defended, nil)
			},
			expectedError: ErrAlreadyDefended,
		},
		{
			name:   "Time budget elapsed",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
				m.repo.EXPECT().Claim(gomock.Any(), 5, 1, frozenTime, time.Minute).Return(false, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(inProgressRaid(), nil)
			},
			expectedError: ErrRaidExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			_, err := service.Claim(context.Background(), 5, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
