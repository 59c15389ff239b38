package handlers

import (
	"net/http"

	_ "github.com/betcha-app/betcha/docs"
	authhandlers "github.com/betcha-app/betcha/internal/handlers/auth"
	balancehandlers "github.com/betcha-app/betcha/internal/handlers/balance"
	friendshandlers "github.com/betcha-app/betcha/internal/handlers/friends"
	raidshandlers "github.com/betcha-app/betcha/internal/handlers/raids"
	wagershandlers "github.com/betcha-app/betcha/internal/handlers/wagers"
	"github.com/betcha-app/betcha/internal/service"
	"github.com/betcha-app/betcha/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WagerHandler interface {
	CreateWager(w http.ResponseWriter, r *http.Request)
	GetWagers(w http.ResponseWriter, r *http.Request)
	Swipe(w http.ResponseWriter, r *http.Request)
	GetClash(w http.ResponseWriter, r *http.Request)
	SubmitProof(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type RaidHandler interface {
	Initiate(w http.ResponseWriter, r *http.Request)
	GetRaid(w http.ResponseWriter, r *http.Request)
	Defend(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type FriendHandler interface {
	AddFriend(w http.ResponseWriter, r *http.Request)
	AcceptFriend(w http.ResponseWriter, r *http.Request)
	GetHeat(w http.ResponseWriter, r *http.Request)
	ProposeHeat(w http.ResponseWriter, r *http.Request)
	AcceptHeat(w http.ResponseWriter, r *http.Request)
	RejectHeat(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	WagerHandler   WagerHandler
	RaidHandler    RaidHandler
	FriendHandler  FriendHandler

	authService authhandlers.Service
}

func New(s *service.Services, notifier raidshandlers.Notifier) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.LedgerService),
		WagerHandler:   wagershandlers.New(s.WagerService),
		RaidHandler:    raidshandlers.New(s.RaidService, notifier),
		FriendHandler:  friendshandlers.New(s.ConsentService),
		authService:    s.AuthService,
	}
}

// presence stamps last_seen_at on every authenticated request; raids read it
// to decide whether the target gets a defense window.
func (h *Handlers) presence(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := r.Context().Value(auth.UserIDKey).(int); ok {
			_ = h.authService.Touch(r.Context(), userID)
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware, h.presence)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/transactions", h.BalanceHandler.GetTransactions)

			r.Route("/wagers", func(r chi.Router) {
				r.Post("/", h.WagerHandler.CreateWager)
				r.Get("/", h.WagerHandler.GetWagers)
				r.Post("/{id}/swipe", h.WagerHandler.Swipe)
			})
			r.Route("/clashes", func(r chi.Router) {
				r.Get("/{id}", h.WagerHandler.GetClash)
				r.Post("/{id}/proof", h.WagerHandler.SubmitProof)
				r.Post("/{id}/review", h.WagerHandler.Review)
			})
			r.Route("/raids", func(r chi.Router) {
				r.Post("/", h.RaidHandler.Initiate)
				r.Get("/{id}", h.RaidHandler.GetRaid)
				r.Post("/{id}/defend", h.RaidHandler.Defend)
				r.Post("/{id}/claim", h.RaidHandler.Claim)
				r.Get("/{id}/events", h.RaidHandler.Events)
			})
			r.Route("/friends", func(r chi.Router) {
				r.Post("/", h.FriendHandler.AddFriend)
				r.Post("/{friendID}/accept", h.FriendHandler.AcceptFriend)
				r.Route("/{friendID}/heat", func(r chi.Router) {
					r.Get("/", h.FriendHandler.GetHeat)
					r.Post("/propose", h.FriendHandler.ProposeHeat)
					r.Post("/accept", h.FriendHandler.AcceptHeat)
					r.Post("/reject", h.FriendHandler.RejectHeat)
				})
			})
		})
	})

	return r
}
