// Package service implements the exchange's operations independently of HTTP.
//
// Every mutating operation checks, in order: the caller's identity, the target's
// existence, the caller's ownership of the target, and the payload. Payloads are
// decoded only after the ownership check so a non-owner always sees ErrForbidden.
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

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// NewUser is a registration request.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// UserService registers, authenticates and updates users.
type UserService struct {
	users    store.UserStore
	hasher   *auth.Hasher
	resolver *auth.Resolver
}

// NewUserService creates a UserService.
func NewUserService(users store.UserStore, hasher *auth.Hasher, resolver *auth.Resolver) *UserService {
	return &UserService{users: users, hasher: hasher, resolver: resolver}
}

// Register creates a user. The email must not be registered yet.
func (s *UserService) Register(ctx context.Context, in NewUser) (*models.User, error) {
	if len(in.Password) < MinPasswordLength {
		return nil, common.Errorf(common.ErrInvalidInput, "Password must be at least %d characters", MinPasswordLength)
	}

	_, err := s.users.FindUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.Errorf(common.ErrConflict, "Email already registered")
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Address:      in.Address,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, common.Errorf(common.ErrConflict, "Email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the email and password and returns a bearer credential. Unknown
// emails and wrong passwords yield the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return "", common.Errorf(common.ErrInvalidCredentials, "Invalid credentials")
	}
	if err != nil {
		return "", fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", common.Errorf(common.ErrInvalidCredentials, "Invalid credentials")
	}

	return s.resolver.Issue(user)
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	if !models.ValidID(id) {
		return nil, common.Errorf(common.ErrInvalidInput, "Invalid user ID")
	}

	user, err := s.users.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, common.Errorf(common.ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update applies a partial update to the actor's own record. decode fills the
// update from the request payload once the actor is authorized.
func (s *UserService) Update(ctx context.Context, actor *models.User, id string, decode func(*models.UserUpdate) error) error {
	if actor == nil {
		return common.ErrUnauthenticated
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeUserMutation(actor, target); err != nil {
		return err
	}

	var upd models.UserUpdate
	if err := decode(&upd); err != nil {
		return common.Errorf(common.ErrInvalidInput, "Invalid payload: %v", err)
	}
	if upd.IsEmpty() {
		return common.Errorf(common.ErrInvalidInput, "No data provided for update")
	}

	if err := s.users.UpdateUser(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return common.Errorf(common.ErrNotFound, "User not found")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
