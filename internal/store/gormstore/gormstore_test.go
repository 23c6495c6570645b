package gormstore

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/store"
)

const (
	userID = "5d1f0c9e-8a7b-4c3d-9e2f-1a0b3c4d5e6f"
	gameID = "0b7e4c1a-5f3d-4c2e-9a61-2d4f8e9b1c00"
)

var gameColumns = []string{
	"id", "name", "publisher", "year_published", "system", "condition",
	"previous_owners", "owner_id", "created_at", "updated_at",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return New(gdb), mock
}

func TestGetUser(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "password_hash", "created_at", "updated_at"}).
			AddRow(userID, "Ada", "ada@example.com", "1 Loop St", "hash", now, now))

	user, err := s.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetUser(context.Background(), userID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.FindUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_AssignsID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{Name: "Ada", Email: "ada@example.com", Address: "1 Loop St", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(context.Background(), user))
	assert.True(t, models.ValidID(user.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Duplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(gorm.ErrDuplicatedKey)

	err := s.CreateUser(context.Background(), &models.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUpdateGame(t *testing.T) {
	s, mock := newMockStore(t)
	condition := "Mint"

	mock.ExpectExec(`UPDATE "games" SET .*"condition"=.*"updated_at"=.* WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateGame(context.Background(), gameID, models.GameUpdate{Condition: &condition}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGame_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	condition := "Mint"

	mock.ExpectExec(`UPDATE "games"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateGame(context.Background(), gameID, models.GameUpdate{Condition: &condition})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteGame(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM "games" WHERE id = \$1`).
		WithArgs(gameID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "games" WHERE id = \$1`).
		WithArgs(gameID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteGame(context.Background(), gameID))
	assert.ErrorIs(t, s.DeleteGame(context.Background(), gameID), store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchGames(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "games" WHERE name ILIKE $1 AND system ILIKE $2`)).
		WithArgs("%mario%", "%nes%").
		WillReturnRows(sqlmock.NewRows(gameColumns).
			AddRow(gameID, "Super Mario Bros.", "Nintendo", 1985, "NES", "Good", 0, userID, now, now))

	games, err := s.SearchGames(context.Background(), models.GameFilter{Name: "mario", System: "nes"})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Super Mario Bros.", games[0].Name)
	assert.Equal(t, userID, games[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchGames_NoFilter(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "games"$`).
		WillReturnRows(sqlmock.NewRows(gameColumns))

	games, err := s.SearchGames(context.Background(), models.GameFilter{})
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `mega\_man`, escapeLike("mega_man"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "zelda", escapeLike("zelda"))
}
