// Package memstore provides an in-memory store.Store for tests and local runs.
package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/store"
)

// Store keeps users and games in maps. Records are copied in and out.
type Store struct {
	mu sync.RWMutex

	users map[string]models.User
	games map[string]models.Game
	// insertion order, standing in for a database's natural order
	gameOrder []string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users: make(map[string]models.User),
		games: make(map[string]models.Game),
	}
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = *user
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	upd.Apply(&u)
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return nil
}

func (s *Store) GetGame(ctx context.Context, id string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &g, nil
}

func (s *Store) CreateGame(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	now := time.Now()
	game.CreatedAt, game.UpdatedAt = now, now
	s.games[game.ID] = *game
	s.gameOrder = append(s.gameOrder, game.ID)
	return nil
}

func (s *Store) UpdateGame(ctx context.Context, id string, upd models.GameUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return store.ErrNotFound
	}
	upd.Apply(&g)
	g.UpdatedAt = time.Now()
	s.games[id] = g
	return nil
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.games, id)
	for i, gid := range s.gameOrder {
		if gid == id {
			s.gameOrder = append(s.gameOrder[:i], s.gameOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) SearchGames(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := strings.ToLower(filter.Name)
	system := strings.ToLower(filter.System)

	games := []models.Game{}
	for _, id := range s.gameOrder {
		g := s.games[id]
		if name != "" && !strings.Contains(strings.ToLower(g.Name), name) {
			continue
		}
		if system != "" && !strings.Contains(strings.ToLower(g.System), system) {
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

var _ store.Store = (*Store)(nil)
