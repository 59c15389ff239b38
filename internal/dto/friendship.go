package dto

import "time"

type AddFriendRequestDTO struct {
	FriendID int `json:"friend_id" example:"2"`
}

type HeatResponseDTO struct {
	FriendID      int        `json:"friend_id" example:"2"`
	HeatLevel     int        `json:"heat_level" example:"2"`
	HeatConfirmed bool       `json:"heat_confirmed" example:"true"`
	HeatChangedAt time.Time  `json:"heat_changed_at"`
	ProposedLevel *int       `json:"proposed_level,omitempty" example:"3"`
	ProposedBy    *int       `json:"proposed_by,omitempty" example:"1"`
	ProposedAt    *time.Time `json:"proposed_at,omitempty"`
}

type ProposeHeatRequestDTO struct {
	Level int `json:"level" example:"3"`
}
