package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"retroexchange/backend/internal/auth"
	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/store/memstore"
)

type fixture struct {
	store *memstore.Store
	users *UserService
	games *GameService
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	s := memstore.New()
	return &fixture{
		store: s,
		users: NewUserService(s, auth.NewHasher(bcrypt.MinCost), auth.NewResolver(s, nil)),
		games: NewGameService(s, strict),
	}
}

func (f *fixture) register(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := f.users.Register(context.Background(), NewUser{
		Name:     "Player",
		Email:    email,
		Password: "hunter22",
		Address:  "1 Arcade Way",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) listGame(t *testing.T, owner *models.User, name, system string) *models.Game {
	t.Helper()
	game, err := f.games.Create(context.Background(), owner, owner.ID, NewGame{
		Name:          name,
		Publisher:     "Nintendo",
		YearPublished: 1985,
		System:        system,
		Condition:     "Good",
	})
	require.NoError(t, err)
	return game
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func noPayload[T any](*T) error { return nil }

func decodeErr[T any](*T) error { return errors.New("unexpected EOF") }
