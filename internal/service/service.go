package service

import (
	"github.com/betcha-app/betcha/internal/config"
	"github.com/betcha-app/betcha/internal/handlers/auth"
	"github.com/betcha-app/betcha/internal/handlers/friends"
	"github.com/betcha-app/betcha/internal/handlers/raids"
	"github.com/betcha-app/betcha/internal/handlers/wagers"

	pkgauth "github.com/betcha-app/betcha/pkg/auth"

	"github.com/betcha-app/betcha/internal/notify"
	"github.com/betcha-app/betcha/internal/repo"
	authservice "github.com/betcha-app/betcha/internal/service/authservice"
	consentservice "github.com/betcha-app/betcha/internal/service/consentservice"
	ledgerservice "github.com/betcha-app/betcha/internal/service/ledgerservice"
	raidservice "github.com/betcha-app/betcha/internal/service/raidservice"
	wagerservice "github.com/betcha-app/betcha/internal/service/wagerservice"
	"github.com/betcha-app/betcha/internal/wagergen"
)

type Services struct {
	AuthService    auth.Service
	LedgerService  *ledgerservice.Service
	WagerService   wagers.Service
	RaidService    raids.Service
	ConsentService friends.Service
}

func New(repo *repo.Repositories, cfg *config.Config, publisher notify.Publisher, generator *wagergen.Client) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	consentService := consentservice.New(repo.FriendshipRepo, publisher, cfg.HeatCooldown)
	wagerService := wagerservice.New(repo.WagerRepo, repo.ClashRepo, repo.UserRepo, ledgerService, consentService, generator, publisher, cfg.ProofWindow)
	raidService := raidservice.New(repo.RaidRepo, repo.UserRepo, ledgerService, publisher, cfg.DefenseWindow, cfg.RaidBudget)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		WagerService:   wagerService,
		RaidService:    raidService,
		ConsentService: consentService,
	}
}
