package models

import (
	"time"

	"github.com/google/uuid"
)

// Positions recognized by the profile store.
var ValidPositions = []string{"PG", "SG", "SF", "PF", "C"}

// PlayerProfile is a saved set of inputs keyed by player name. Owned by
// the persistence collaborator; the pipeline only ever sees the resolved
// PlayerInputs. The embedded inputs keep the profile file flat, the way
// the tool has always written it.
type PlayerProfile struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Name     string    `json:"player_name" validate:"required"`
	Position string    `json:"player_position" validate:"omitempty,oneof=PG SG SF PF C"`
	PlayerInputs
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// NewPlayerProfile builds a profile with a fresh ID.
func NewPlayerProfile(name, position string, inputs PlayerInputs) PlayerProfile {
	return PlayerProfile{
		ID:           uuid.New(),
		Name:         name,
		Position:     position,
		PlayerInputs: inputs,
		UpdatedAt:    time.Now().UTC(),
	}
}

// Validate checks the profile record before it is persisted.
func (p PlayerProfile) Validate() error {
	if p.Name == "" {
		return ErrProfileNameRequired
	}
	if p.Position != "" && !isValidPosition(p.Position) {
		return ErrInvalidInput
	}
	return p.PlayerInputs.Validate()
}

func isValidPosition(position string) bool {
	for _, v := range ValidPositions {
		if position == v {
			return true
		}
	}
	return false
}
