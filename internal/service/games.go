package service

import (
	"context"
	"errors"
	"fmt"

	"retroexchange/backend/internal/auth"
	"retroexchange/backend/internal/common"
	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/store"
)

// NewGame is a listing request. PreviousOwners defaults to 0 when nil.
type NewGame struct {
	Name           string
	Publisher      string
	YearPublished  int
	System         string
	Condition      string
	PreviousOwners *int
}

// GameService manages game listings.
//
// With strict ownership off, creation trusts the owner ID supplied by the caller
// and deletion performs no ownership check. With it on, both require an
// authenticated caller who is (or becomes) the owner.
type GameService struct {
	store  store.Store
	strict bool
}

// NewGameService creates a GameService.
func NewGameService(s store.Store, strictOwnership bool) *GameService {
	return &GameService{store: s, strict: strictOwnership}
}

// Create lists a game for ownerID. actor may be nil unless strict ownership is on,
// in which case an empty ownerID means the actor.
func (s *GameService) Create(ctx context.Context, actor *models.User, ownerID string, in NewGame) (*models.Game, error) {
	if s.strict {
		if actor == nil {
			return nil, common.ErrUnauthenticated
		}
		if ownerID == "" {
			ownerID = actor.ID
		}
		if ownerID != actor.ID {
			return nil, common.Errorf(common.ErrForbidden, "Games can only be listed for yourself")
		}
	}

	if ownerID == "" {
		return nil, common.Errorf(common.ErrInvalidInput, "owner_id is required")
	}
	if !models.ValidID(ownerID) {
		return nil, common.Errorf(common.ErrInvalidInput, "Invalid owner ID")
	}

	_, err := s.store.GetUser(ctx, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, common.Errorf(common.ErrNotFound, "Owner not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	game := &models.Game{
		Name:          in.Name,
		Publisher:     in.Publisher,
		YearPublished: in.YearPublished,
		System:        in.System,
		Condition:     in.Condition,
		OwnerID:       ownerID,
	}
	if in.PreviousOwners != nil {
		game.PreviousOwners = *in.PreviousOwners
	}

	if err := s.store.CreateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return game, nil
}

// Get returns the game with the given id.
func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	if !models.ValidID(id) {
		return nil, common.Errorf(common.ErrInvalidInput, "Invalid game ID")
	}

	game, err := s.store.GetGame(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, common.Errorf(common.ErrNotFound, "Game not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	return game, nil
}

// Update applies a partial update to a game owned by actor. decode fills the
// update from the request payload once the actor is authorized.
func (s *GameService) Update(ctx context.Context, actor *models.User, id string, decode func(*models.GameUpdate) error) error {
	if actor == nil {
		return common.ErrUnauthenticated
	}

	game, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeGameMutation(actor, game); err != nil {
		return err
	}

	var upd models.GameUpdate
	if err := decode(&upd); err != nil {
		return common.Errorf(common.ErrInvalidInput, "Invalid payload: %v", err)
	}
	if upd.IsEmpty() {
		return common.Errorf(common.ErrInvalidInput, "No data provided for update")
	}

	if err := s.store.UpdateGame(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return common.Errorf(common.ErrNotFound, "Game not found")
		}
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

// Delete removes a game. actor is only consulted under strict ownership.
func (s *GameService) Delete(ctx context.Context, actor *models.User, id string) error {
	if s.strict && actor == nil {
		return common.ErrUnauthenticated
	}

	game, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if s.strict {
		if err := auth.AuthorizeGameMutation(actor, game); err != nil {
			return err
		}
	}

	if err := s.store.DeleteGame(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return common.Errorf(common.ErrNotFound, "Game not found")
		}
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// Search returns games matching filter. Any authenticated user may search.
func (s *GameService) Search(ctx context.Context, actor *models.User, filter models.GameFilter) ([]models.Game, error) {
	if actor == nil {
		return nil, common.ErrUnauthenticated
	}

	games, err := s.store.SearchGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	return games, nil
}
