package dto

import "time"

type BalanceResponseDTO struct {
	Current int64 `json:"current" example:"500"`
}

type TransactionResponseDTO struct {
	Amount           int64     `json:"amount" example:"-20"`
	ResultingBalance int64     `json:"resulting_balance" example:"480"`
	Type             string    `json:"type" example:"stake_lock"`
	RefType          string    `json:"ref_type" example:"wager"`
	RefID            int64     `json:"ref_id" example:"7"`
	ProcessedAt      time.Time `json:"processed_at" example:"2025-06-09T16:09:57+03:00"`
}
