package balance

import (
	"context"
	"net/http"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/dto"
	"github.com/betcha-app/betcha/pkg/auth"
	"github.com/betcha-app/betcha/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=balance

type Service interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current bingo balance for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	Get the full bingo transaction history for the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions yet"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txs, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, utils.Response{Message: "No transactions yet"})
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(txs))
	for _, tx := range txs {
		response = append(response, dto.TransactionResponseDTO{
			Amount:           tx.Amount,
			ResultingBalance: tx.ResultingBalance,
			Type:             tx.Type,
			RefType:          tx.RefType,
			RefID:            tx.RefID,
			ProcessedAt:      tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
