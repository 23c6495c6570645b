// Package gormstore implements store.Store on top of gorm.
package gormstore

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/store"
)

// Store is a gorm-backed store.Store.
type Store struct {
	db *gorm.DB
}

// New wraps an open gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(upd.Columns())
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *Store) CreateGame(ctx context.Context, game *models.Game) error {
	return translate(s.db.WithContext(ctx).Create(game).Error)
}

func (s *Store) UpdateGame(ctx context.Context, id string, upd models.GameUpdate) error {
	res := s.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Updates(upd.Columns())
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Game{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SearchGames(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	query := s.db.WithContext(ctx).Model(&models.Game{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(filter.Name)+"%")
	}
	if filter.System != "" {
		query = query.Where("system ILIKE ?", "%"+escapeLike(filter.System)+"%")
	}

	games := []models.Game{}
	if err := query.Find(&games).Error; err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// translate maps gorm errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	default:
		return err
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var _ store.Store = (*Store)(nil)
