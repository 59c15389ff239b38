package repo

import (
	"testing"

	"github.com/betcha-app/betcha/internal/pg"
	clashrepo "github.com/betcha-app/betcha/internal/repo/clash-repo"
	friendshiprepo "github.com/betcha-app/betcha/internal/repo/friendship-repo"
	ledgerrepo "github.com/betcha-app/betcha/internal/repo/ledger-repo"
	raidrepo "github.com/betcha-app/betcha/internal/repo/raid-repo"
	userrepo "github.com/betcha-app/betcha/internal/repo/user-repo"
	wagerrepo "github.com/betcha-app/betcha/internal/repo/wager-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.FriendshipRepo)
	assert.NotNil(t, repo.WagerRepo)
	assert.NotNil(t, repo.ClashRepo)
	assert.NotNil(t, repo.RaidRepo)
	assert.NotNil(t, repo.LedgerRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &friendshiprepo.Repository{}, repo.FriendshipRepo)
	assert.IsType(t, &wagerrepo.Repository{}, repo.WagerRepo)
	assert.IsType(t, &clashrepo.Repository{}, repo.ClashRepo)
	assert.IsType(t, &raidrepo.Repository{}, repo.RaidRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
