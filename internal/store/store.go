// Package store defines the persistence contract for users and game listings.
package store

import (
	"context"
	"errors"

	"retroexchange/backend/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a unique field.
	ErrDuplicate = errors.New("duplicate record")
)

// UserStore persists users.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error
}

// GameStore persists game listings.
type GameStore interface {
	GetGame(ctx context.Context, id string) (*models.Game, error)
	CreateGame(ctx context.Context, game *models.Game) error
	UpdateGame(ctx context.Context, id string, upd models.GameUpdate) error
	DeleteGame(ctx context.Context, id string) error
	// SearchGames matches name and system as case-insensitive substrings, AND-combined.
	SearchGames(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
}

// Store is the full persistence surface used by the services.
type Store interface {
	UserStore
	GameStore
}
