package wagers

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
	ledgerservice "github.com/betcha-app/betcha/internal/service/ledgerservice"
	wagerservice "github.com/betcha-app/betcha/internal/service/wagerservice"
	"github.com/betcha-app/betcha/pkg/auth"
	"github.com/betcha-app/betcha/pkg/utils"
)

//go:generate mockgen -source=wagers.go -destination=wagers_mock.go -package=wagers

type Service interface {
	CreateWager(ctx context.Context, creatorID, counterpartID int, counterpartLogin, riskProfile string) (*domain.Wager, error)
	GetOpenWagers(ctx context.Context, userID int) ([]domain.Wager, error)
	RecordSwipe(ctx context.Context, wagerID, userID int, vote string, stakeAmount int64) (*wagerservice.SwipeResult, error)
	GetClash(ctx context.Context, clashID int) (*domain.Clash, error)
	SubmitProof(ctx context.Context, clashID, userID int, proofRef string) error
	Review(ctx context.Context, clashID, reviewerID int, accept bool, reason string) error
}

type WagerHandler struct {
	wagerService Service
}

func New(wagerService Service) *WagerHandler {
	return &WagerHandler{
		wagerService: wagerService,
	}
}

// CreateWager godoc
//
//	@Summary		Create a wager
//	@Description	Generate a wager against a friend, gated by the pair's confirmed heat level.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWagerRequestDTO	true	"Wager request payload"
//	@Success		200		{object}	dto.WagerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not friends"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wagers [post]
func (h *WagerHandler) CreateWager(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wager, err := h.wagerService.CreateWager(r.Context(), userID, req.CounterpartID, req.CounterpartLogin, req.RiskProfile)
	if err != nil {
		switch {
		case errors.Is(err, consentservice.ErrNotFriends), errors.Is(err, consentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WagerResponseDTO{
		ID:              wager.ID,
		Text:            wager.Text,
		BaseStake:       wager.BaseStake,
		HeatRequirement: wager.HeatRequirement,
		ExpiresAt:       wager.ExpiresAt,
	})
}

// GetWagers godoc
//
//	@Summary		Get open wagers
//	@Description	List open, unexpired wagers where the authenticated user is a pending participant.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WagerResponseDTO	"Open wagers"
//	@Success		204	{object}	utils.Response			"No open wagers"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wagers [get]
func (h *WagerHandler) GetWagers(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wagers, err := h.wagerService.GetOpenWagers(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wagers")
		return
	}
	if len(wagers) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, utils.Response{Message: "No open wagers"})
		return
	}

	response := make([]dto.WagerResponseDTO, 0, len(wagers))
	for _, wager := range wagers {
		response = append(response, dto.WagerResponseDTO{
			ID:              wager.ID,
			Text:            wager.Text,
			BaseStake:       wager.BaseStake,
			HeatRequirement: wager.HeatRequirement,
			ExpiresAt:       wager.ExpiresAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Swipe godoc
//
//	@Summary		Swipe on a wager
//	@Description	Record a yes or no vote, locking the stake. When both parties have voted the wager resolves to a clash or a hairball.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Wager ID"
//	@Param			request	body		dto.SwipeRequestDTO	true	"Swipe payload"
//	@Success		200		{object}	dto.SwipeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Not a party to this wager"
//	@Failure		404		{object}	utils.Response	"Wager not found"
//	@Failure		409		{object}	utils.Response	"Already voted"
//	@Failure		410		{object}	utils.Response	"Wager is closed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wagers/{id}/swipe [post]
func (h *WagerHandler) Swipe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wagerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wager id")
		return
	}

	var req dto.SwipeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.wagerService.RecordSwipe(r.Context(), wagerID, userID, req.Vote, req.StakeAmount)
	if err != nil {
		switch {
		case errors.Is(err, wagerservice.ErrInvalidVote):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, wagerservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, wagerservice.ErrWagerClosed):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		case errors.Is(err, wagerservice.ErrAlreadyVoted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, wagerservice.ErrNotAuthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SwipeResponseDTO{
		Outcome: string(result.Outcome),
		ClashID: result.ClashID,
	})
}

// GetClash godoc
//
//	@Summary		Get a clash
//	@Description	Fetch a matched clash by id.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Clash ID"
//	@Success		200	{object}	dto.ClashResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid clash id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Clash not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/clashes/{id} [get]
func (h *WagerHandler) GetClash(w http.ResponseWriter, r *http.Request) {
	clashID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid clash id")
		return
	}

	clash, err := h.wagerService.GetClash(r.Context(), clashID)
	if err != nil {
		switch {
		case errors.Is(err, wagerservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClashResponseDTO{
		ID:            clash.ID,
		WagerID:       clash.WagerID,
		YesUserID:     clash.YesUserID,
		NoUserID:      clash.NoUserID,
		TotalPot:      clash.TotalPot,
		ProverID:      clash.ProverID,
		ProofDeadline: clash.ProofDeadline,
		Status:        clash.Status,
	})
}

// SubmitProof godoc
//
//	@Summary		Submit clash proof
//	@Description	Record the prover's proof reference before the proof deadline.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Clash ID"
//	@Param			request	body		dto.SubmitProofRequestDTO	true	"Proof payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Only the prover can submit proof"
//	@Failure		404		{object}	utils.Response	"Clash not found"
//	@Failure		409		{object}	utils.Response	"Clash is not awaiting proof"
//	@Failure		410		{object}	utils.Response	"Proof deadline has passed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/clashes/{id}/proof [post]
func (h *WagerHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	clashID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid clash id")
		return
	}

	var req dto.SubmitProofRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.wagerService.SubmitProof(r.Context(), clashID, userID, req.ProofRef)
	if err != nil {
		switch {
		case errors.Is(err, wagerservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, wagerservice.ErrNotAuthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, wagerservice.ErrDeadlinePassed):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		case errors.Is(err, wagerservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Proof submitted"})
}

// Review godoc
//
//	@Summary		Review clash proof
//	@Description	Accept the submitted proof, paying the pot to the prover, or dispute it with a reason.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Clash ID"
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Reviewer is not the counterparty"
//	@Failure		404		{object}	utils.Response	"Clash not found"
//	@Failure		409		{object}	utils.Response	"Clash is not reviewable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/clashes/{id}/review [post]
func (h *WagerHandler) Review(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	clashID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid clash id")
		return
	}

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.wagerService.Review(r.Context(), clashID, userID, req.Accept, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, wagerservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, wagerservice.ErrNotAuthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, wagerservice.ErrReviewBeforeProof), errors.Is(err, wagerservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Review recorded"})
}
