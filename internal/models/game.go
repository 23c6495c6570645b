package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Game represents a listing of a game owned by a user.
type Game struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Name           string `gorm:"size:255;not null;index"`
	Publisher      string `gorm:"size:255;not null"`
	YearPublished  int    `gorm:"not null"`
	System         string `gorm:"size:100;not null;index"`
	Condition      string `gorm:"size:100;not null"`
	PreviousOwners int    `gorm:"not null"`
	OwnerID        string `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BeforeCreate assigns the store identifier.
func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// GameUpdate holds the mutable game fields. The owner is not updatable.
type GameUpdate struct {
	Name           *string `json:"name"`
	Publisher      *string `json:"publisher"`
	YearPublished  *int    `json:"year_published"`
	System         *string `json:"system"`
	Condition      *string `json:"condition"`
	PreviousOwners *int    `json:"previous_owners"`
}

// IsEmpty reports whether no field is present.
func (u GameUpdate) IsEmpty() bool {
	return u.Name == nil && u.Publisher == nil && u.YearPublished == nil &&
		u.System == nil && u.Condition == nil && u.PreviousOwners == nil
}

// Apply merges the present fields into game.
func (u GameUpdate) Apply(game *Game) {
	if u.Name != nil {
		game.Name = *u.Name
	}
	if u.Publisher != nil {
		game.Publisher = *u.Publisher
	}
	if u.YearPublished != nil {
		game.YearPublished = *u.YearPublished
	}
	if u.System != nil {
		game.System = *u.System
	}
	if u.Condition != nil {
		game.Condition = *u.Condition
	}
	if u.PreviousOwners != nil {
		game.PreviousOwners = *u.PreviousOwners
	}
}

// Columns returns the present fields keyed by column name.
func (u GameUpdate) Columns() map[string]any {
	cols := make(map[string]any)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Publisher != nil {
		cols["publisher"] = *u.Publisher
	}
	if u.YearPublished != nil {
		cols["year_published"] = *u.YearPublished
	}
	if u.System != nil {
		cols["system"] = *u.System
	}
	if u.Condition != nil {
		cols["condition"] = *u.Condition
	}
	if u.PreviousOwners != nil {
		cols["previous_owners"] = *u.PreviousOwners
	}
	return cols
}

// GameFilter narrows a game search. Empty fields do not filter.
type GameFilter struct {
	Name   string
	System string
}
