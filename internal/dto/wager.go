package dto

import "time"

type CreateWagerRequestDTO struct {
	CounterpartID    int    `json:"counterpart_id" example:"2"`
	CounterpartLogin string `json:"counterpart_login" example:"sam"`
	RiskProfile      string `json:"risk_profile" example:"loves running dares"`
}

type WagerResponseDTO struct {
	ID              int       `json:"id" example:"7"`
	Text            string    `json:"text" example:"Bet you won't run 5k before Sunday"`
	BaseStake       int64     `json:"base_stake" example:"25"`
	HeatRequirement int       `json:"heat_requirement" example:"2"`
	ExpiresAt       time.Time `json:"expires_at"`
}

type SwipeRequestDTO struct {
	Vote        string `json:"vote" example:"yes"`
	StakeAmount int64  `json:"stake_amount" example:"20"`
}

type SwipeResponseDTO struct {
	Outcome string `json:"outcome" example:"clash"`
	ClashID int    `json:"clash_id,omitempty" example:"3"`
}

type ClashResponseDTO struct {
	ID            int       `json:"id" example:"3"`
	WagerID       int       `json:"wager_id" example:"7"`
	YesUserID     int       `json:"yes_user_id" example:"1"`
	NoUserID      int       `json:"no_user_id" example:"2"`
	TotalPot      int64     `json:"total_pot" example:"40"`
	ProverID      int       `json:"prover_id" example:"1"`
	ProofDeadline time.Time `json:"proof_deadline"`
	Status        string    `json:"status" example:"pending_proof"`
}

type SubmitProofRequestDTO struct {
	ProofRef string `json:"proof_ref" example:"s3://proofs/abc123.jpg"`
}

type ReviewRequestDTO struct {
	Accept bool   `json:"accept" example:"true"`
	Reason string `json:"reason,omitempty" example:"that photo is from last year"`
}
