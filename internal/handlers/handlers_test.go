package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/betcha-app/betcha/docs"
	"github.com/betcha-app/betcha/internal/handlers/auth"
	"github.com/betcha-app/betcha/internal/handlers/friends"
	"github.com/betcha-app/betcha/internal/handlers/raids"
	"github.com/betcha-app/betcha/internal/handlers/wagers"
	"github.com/betcha-app/betcha/internal/service"
	ledgerservice "github.com/betcha-app/betcha/internal/service/ledgerservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		LedgerService:  ledgerservice.New(ledgerservice.NewMockRepo(ctrl)),
		WagerService:   wagers.NewMockService(ctrl),
		RaidService:    raids.NewMockService(ctrl),
		ConsentService: friends.NewMockService(ctrl),
	}

	h := New(services, raids.NewMockNotifier(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockWagerHandler := NewMockWagerHandler(ctrl)
	mockRaidHandler := NewMockRaidHandler(ctrl)
	mockFriendHandler := NewMockFriendHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().CreateWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().GetWagers(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().Swipe(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().GetClash(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().SubmitProof(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().Review(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaidHandler.EXPECT().Initiate(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaidHandler.EXPECT().GetRaid(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaidHandler.EXPECT().Defend(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaidHandler.EXPECT().Claim(gomock.Any(), gomock.Any()).AnyTimes()
	mockRaidHandler.EXPECT().Events(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().AddFriend(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().AcceptFriend(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().GetHeat(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().ProposeHeat(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().AcceptHeat(gomock.Any(), gomock.Any()).AnyTimes()
	mockFriendHandler.EXPECT().RejectHeat(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		BalanceHandler: mockBalanceHandler,
		WagerHandler:   mockWagerHandler,
		RaidHandler:    mockRaidHandler,
		FriendHandler:  mockFriendHandler,
		authService:    auth.NewMockService(ctrl),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/wagers", http.StatusUnauthorized},
		{"GET", "/api/user/wagers", http.StatusUnauthorized},
		{"POST", "/api/user/wagers/1/swipe", http.StatusUnauthorized},
		{"GET", "/api/user/clashes/1", http.StatusUnauthorized},
		{"POST", "/api/user/clashes/1/proof", http.StatusUnauthorized},
		{"POST", "/api/user/clashes/1/review", http.StatusUnauthorized},
		{"POST", "/api/user/raids", http.StatusUnauthorized},
		{"GET", "/api/user/raids/1", http.StatusUnauthorized},
		{"POST", "/api/user/raids/1/defend", http.StatusUnauthorized},
		{"POST", "/api/user/raids/1/claim", http.StatusUnauthorized},
		{"GET", "/api/user/raids/1/events", http.StatusUnauthorized},
		{"POST", "/api/user/friends", http.StatusUnauthorized},
		{"POST", "/api/user/friends/2/accept", http.StatusUnauthorized},
		{"GET", "/api/user/friends/2/heat", http.StatusUnauthorized},
		{"POST", "/api/user/friends/2/heat/propose", http.StatusUnauthorized},
		{"POST", "/api/user/friends/2/heat/accept", http.StatusUnauthorized},
		{"POST", "/api/user/friends/2/heat/reject", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
