package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered trader in the exchange.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Address      string `gorm:"size:512;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns the store identifier.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserUpdate holds the mutable user fields. A nil field is absent and left untouched.
type UserUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// IsEmpty reports whether no field is present.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil
}

// Apply merges the present fields into user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Address != nil {
		user.Address = *u.Address
	}
}

// Columns returns the present fields keyed by column name.
func (u UserUpdate) Columns() map[string]any {
	cols := make(map[string]any)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Address != nil {
		cols["address"] = *u.Address
	}
	return cols
}

// ValidID reports whether id is a canonical store identifier.
func ValidID(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == id
}
