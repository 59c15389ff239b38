package dto

import "time"

type InitiateRaidRequestDTO struct {
	TargetID int `json:"target_id" example:"2"`
}

type RaidResponseDTO struct {
	ID               int        `json:"id" example:"5"`
	ThiefID          int        `json:"thief_id" example:"1"`
	TargetID         int        `json:"target_id" example:"2"`
	StealPercentage  float64    `json:"steal_percentage" example:"0.1"`
	PotentialAmount  int64      `json:"potential_amount" example:"50"`
	TargetWasOnline  bool       `json:"target_was_online" example:"true"`
	DefenseWindowEnd *time.Time `json:"defense_window_end,omitempty"`
	Status           string     `json:"status" example:"in_progress"`
}
