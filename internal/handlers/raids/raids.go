package raids

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/dto"
	"github.com/betcha-app/betcha/internal/notify"
	raidservice "github.com/betcha-app/betcha/internal/service/raidservice"
	"github.com/betcha-app/betcha/pkg/auth"
	"github.com/betcha-app/betcha/pkg/utils"
)

//go:generate mockgen -source=raids.go -destination=raids_mock.go -package=raids

type Service interface {
	Initiate(ctx context.Context, thiefID, targetID int) (*domain.RaidAttempt, error)
	Get(ctx context.Context, raidID int) (*domain.RaidAttempt, error)
	Defend(ctx context.Context, raidID, userID int) (*domain.RaidAttempt, error)
	Claim(ctx context.Context, raidID, userID int) (*domain.RaidAttempt, error)
}

type Notifier interface {
	Subscribe(raidID int) (<-chan notify.Event, func())
}

type RaidHandler struct {
	raidService Service
	notifier    Notifier
}

func New(raidService Service, notifier Notifier) *RaidHandler {
	return &RaidHandler{
		raidService: raidService,
		notifier:    notifier,
	}
}

func toDTO(raid *domain.RaidAttempt) dto.RaidResponseDTO {
	return dto.RaidResponseDTO{
		ID:               raid.ID,
		ThiefID:          raid.ThiefID,
		TargetID:         raid.TargetID,
		StealPercentage:  raid.StealPercentage,
		PotentialAmount:  raid.PotentialAmount,
		TargetWasOnline:  raid.TargetWasOnline,
		DefenseWindowEnd: raid.DefenseWindowEnd,
		Status:           raid.Status,
	}
}

// Initiate godoc
//
//	@Summary		Start a raid
//	@Description	Open a steal attempt against another user. The potential amount is fixed from the target's balance at this moment.
//	@Tags			Raids
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiateRaidRequestDTO	true	"Raid request payload"
//	@Success		200		{object}	dto.RaidResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Target not found"
//	@Failure		422		{object}	utils.Response	"Target has nothing to steal"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/raids [post]
func (h *RaidHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InitiateRaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	raid, err := h.raidService.Initiate(r.Context(), userID, req.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, raidservice.ErrSelfRaid):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, raidservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, raidservice.ErrNothingToSteal):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(raid))
}

// GetRaid godoc
//
//	@Summary		Get a raid
//	@Description	Fetch a raid attempt by id.
//	@Tags			Raids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raid ID"
//	@Success		200	{object}	dto.RaidResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid raid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Raid not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/raids/{id} [get]
func (h *RaidHandler) GetRaid(w http.ResponseWriter, r *http.Request) {
	raidID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raid id")
		return
	}

	raid, err := h.raidService.Get(r.Context(), raidID)
	if err != nil {
		switch {
		case errors.Is(err, raidservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(raid))
}

// Defend godoc
//
//	@Summary		Defend against a raid
//	@Description	Catch the thief inside the defense window. Catching is terminal and costs the thief twice the potential amount.
//	@Tags			Raids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raid ID"
//	@Success		200	{object}	dto.RaidResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid raid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only the target can defend"
//	@Failure		404	{object}	utils.Response	"Raid not found"
//	@Failure		409	{object}	utils.Response	"Raid already resolved"
//	@Failure		410	{object}	utils.Response	"Defense window closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/raids/{id}/defend [post]
func (h *RaidHandler) Defend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	raidID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raid id")
		return
	}

	raid, err := h.raidService.Defend(r.Context(), raidID, userID)
	if err != nil {
		switch {
		case errors.Is(err, raidservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, raidservice.ErrNotAuthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, raidservice.ErrRaidClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, raidservice.ErrWindowClosed):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(raid))
}

// Claim godoc
//
//	@Summary		Claim raid loot
//	@Description	Complete the raid inside its time budget. The defended flag is re-checked at commit, so a claim racing a defend loses.
//	@Tags			Raids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raid ID"
//	@Success		200	{object}	dto.RaidResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid raid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Only the thief can claim"
//	@Failure		404	{object}	utils.Response	"Raid not found"
//	@Failure		409	{object}	utils.Response	"Raid was defended or already resolved"
//	@Failure		410	{object}	utils.Response	"Raid time budget elapsed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/raids/{id}/claim [post]
func (h *RaidHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	raidID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raid id")
		return
	}

	raid, err := h.raidService.Claim(r.Context(), raidID, userID)
	if err != nil {
		switch {
		case errors.Is(err, raidservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, raidservice.ErrNotAuthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, raidservice.ErrAlreadyDefended), errors.Is(err, raidservice.ErrRaidClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, raidservice.ErrRaidExpired):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(raid))
}

// Events godoc
//
//	@Summary		Stream raid events
//	@Description	Server-sent event stream of notifications for one raid. Advisory only; raid state transitions never depend on delivery.
//	@Tags			Raids
//	@Security		BearerAuth
//	@Produce		text/event-stream
//	@Param			id	path		int	true	"Raid ID"
//	@Success		200	{string}	string			"Event stream"
//	@Failure		400	{object}	utils.Response	"Invalid raid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Streaming unsupported"
//	@Router			/api/user/raids/{id}/events [get]
func (h *RaidHandler) Events(w http.ResponseWriter, r *http.Request) {
	raidID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid raid id")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	events, cancel := h.notifier.Subscribe(raidID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
			flusher.Flush()
		}
	}
}
