package repo

import (
	"github.com/betcha-app/betcha/internal/pg"
	clashrepo "github.com/betcha-app/betcha/internal/repo/clash-repo"
	friendshiprepo "github.com/betcha-app/betcha/internal/repo/friendship-repo"
	ledgerrepo "github.com/betcha-app/betcha/internal/repo/ledger-repo"
	raidrepo "github.com/betcha-app/betcha/internal/repo/raid-repo"
	userrepo "github.com/betcha-app/betcha/internal/repo/user-repo"
	wagerrepo "github.com/betcha-app/betcha/internal/repo/wager-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	FriendshipRepo *friendshiprepo.Repository
	WagerRepo      *wagerrepo.Repository
	ClashRepo      *clashrepo.Repository
	RaidRepo       *raidrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		FriendshipRepo: friendshiprepo.New(conn, txManager),
		WagerRepo:      wagerrepo.New(conn, txManager),
		ClashRepo:      clashrepo.New(conn),
		RaidRepo:       raidrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn, txManager),
	}
}
