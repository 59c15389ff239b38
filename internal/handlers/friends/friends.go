package friends

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/dto"
	consentservice "github.com/betcha-app/betcha/internal/service/consentservice"
	"github.com/betcha-app/betcha/pkg/auth"
	"github.com/betcha-app/betcha/pkg/utils"
)

//go:generate mockgen -source=friends.go -destination=friends_mock.go -package=friends

type Service interface {
	AddFriend(ctx context.Context, userID, friendID int) error
	AcceptFriend(ctx context.Context, userID, friendID int) error
	Get(ctx context.Context, userID, friendID int) (*domain.Friendship, error)
	Propose(ctx context.Context, proposerID, friendID, level int) error
	Accept(ctx context.Context, userID, friendID int) error
	Reject(ctx context.Context, userID, friendID int) error
}

type FriendHandler struct {
	consentService Service
}

func New(consentService Service) *FriendHandler {
	return &FriendHandler{
		consentService: consentService,
	}
}

func friendID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "friendID"))
}

// AddFriend godoc
//
//	@Summary		Request a friendship
//	@Description	Create a pending friendship with another user. Idempotent if the friendship already exists.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddFriendRequestDTO	true	"Friend request payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/friends [post]
func (h *FriendHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddFriendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FriendID == userID {
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot befriend yourself")
		return
	}

	if err := h.consentService.AddFriend(r.Context(), userID, req.FriendID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Friend request sent"})
}

// AcceptFriend godoc
//
//	@Summary		Accept a friendship
//	@Description	Accept a pending friendship request.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			friendID	path		int	true	"Friend user ID"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid friend id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Friendship not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/friends/{friendID}/accept [post]
func (h *FriendHandler) AcceptFriend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fid, err := friendID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid friend id")
		return
	}

	if err := h.consentService.AcceptFriend(r.Context(), userID, fid); err != nil {
		switch {
		case errors.Is(err, consentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Friendship accepted"})
}

// GetHeat godoc
//
//	@Summary		Get heat state
//	@Description	Get the heat level, confirmation flag and any pending proposal for one friendship.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			friendID	path		int	true	"Friend user ID"
//	@Success		200			{object}	dto.HeatResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid friend id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Friendship not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/friends/{friendID}/heat [get]
func (h *FriendHandler) GetHeat(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fid, err := friendID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid friend id")
		return
	}

	f, err := h.consentService.Get(r.Context(), userID, fid)
	if err != nil {
		switch {
		case errors.Is(err, consentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HeatResponseDTO{
		FriendID:      f.FriendID,
		HeatLevel:     f.HeatLevel,
		HeatConfirmed: f.HeatConfirmed,
		HeatChangedAt: f.HeatChangedAt,
		ProposedLevel: f.ProposedLevel,
		ProposedBy:    f.ProposedBy,
		ProposedAt:    f.ProposedAt,
	})
}

// ProposeHeat godoc
//
//	@Summary		Propose a heat level
//	@Description	Propose a new heat level for the friendship. Matching cross-proposals confirm immediately.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			friendID	path		int						true	"Friend user ID"
//	@Param			request		body		dto.ProposeHeatRequestDTO	true	"Proposal payload"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid level"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Friendship not accepted"
//	@Failure		404			{object}	utils.Response	"Friendship not found"
//	@Failure		409			{object}	utils.Response	"Already at the requested level"
//	@Failure		429			{object}	utils.Response	"Cooldown active"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/friends/{friendID}/heat/propose [post]
func (h *FriendHandler) ProposeHeat(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fid, err := friendID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid friend id")
		return
	}

	var req dto.ProposeHeatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.consentService.Propose(r.Context(), userID, fid, req.Level)
	if err != nil {
		switch {
		case errors.Is(err, consentservice.ErrInvalidLevel):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, consentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, consentservice.ErrNotFriends):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, consentservice.ErrAlreadyAtLevel):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, consentservice.ErrCooldownActive):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Proposal recorded"})
}

// AcceptHeat godoc
//
//	@Summary		Accept a heat proposal
//	@Description	Confirm the counterpart's pending heat proposal. Resets the cooldown clock.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			friendID	path		int	true	"Friend user ID"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid friend id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Friendship not accepted"
//	@Failure		404			{object}	utils.Response	"Friendship not found"
//	@Failure		409			{object}	utils.Response	"No pending proposal or own proposal"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/friends/{friendID}/heat/accept [post]
func (h *FriendHandler) AcceptHeat(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fid, err := friendID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid friend id")
		return
	}

	err = h.consentService.Accept(r.Context(), userID, fid)
	if err != nil {
		switch {
		case errors.Is(err, consentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, consentservice.ErrNotFriends):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, consentservice.ErrNoPendingProposal), errors.Is(err, consentservice.ErrCannotAcceptOwnProposal):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Heat level confirmed"})
}

// RejectHeat godoc
//
//	@Summary		Reject a heat proposal
//	@Description	Clear the pending proposal. A rejected decrease still lowers the level; the more cautious party wins.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			friendID	path		int	true	"Friend user ID"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid friend id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Friendship not accepted"
//	@Failure		404			{object}	utils.Response	"Friendship not found"
//	@Failure		409			{object}	utils.Response	"No pending proposal or own proposal"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/friends/{friendID}/heat/reject [post]
func (h *FriendHandler) RejectHeat(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fid, err := friendID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid friend id")
		return
	}

	err = h.consentService.Reject(r.Context(), userID, fid)
	if err != nil {
		switch {
		case errors.Is(err, consentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, consentservice.ErrNotFriends):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, consentservice.ErrNoPendingProposal), errors.Is(err, consentservice.ErrCannotAcceptOwnProposal):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Proposal rejected"})
}
