package auth

import (
	"context"
	"errors"
	"fmt"

	"retroexchange/backend/internal/common"
	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/store"
	"retroexchange/backend/pkg/jwt"
)

// TokenCodec converts between user IDs and bearer credentials.
type TokenCodec interface {
	Encode(userID string) (string, error)
	Decode(credential string) (string, error)
}

// IDCodec uses the user ID itself as the credential. Anyone who learns a user's ID
// can act as that user; JWTCodec is the signed alternative.
type IDCodec struct{}

func (IDCodec) Encode(userID string) (string, error)     { return userID, nil }
func (IDCodec) Decode(credential string) (string, error) { return credential, nil }

// JWTCodec wraps the user ID in an HS256 token.
type JWTCodec struct {
	Secret []byte
}

func (c JWTCodec) Encode(userID string) (string, error) {
	return jwt.GenerateToken(userID, c.Secret)
}

func (c JWTCodec) Decode(credential string) (string, error) {
	return jwt.ParseToken(credential, c.Secret)
}

// Resolver issues credentials and resolves them back to users.
type Resolver struct {
	users store.UserStore
	codec TokenCodec
}

// NewResolver creates a resolver; a nil codec means IDCodec.
func NewResolver(users store.UserStore, codec TokenCodec) *Resolver {
	if codec == nil {
		codec = IDCodec{}
	}
	return &Resolver{users: users, codec: codec}
}

// Issue returns the credential for user.
func (r *Resolver) Issue(user *models.User) (string, error) {
	return r.codec.Encode(user.ID)
}

// Resolve returns the user identified by credential, or common.ErrUnauthenticated.
// Store failures other than not-found are returned as-is.
func (r *Resolver) Resolve(ctx context.Context, credential string) (*models.User, error) {
	if credential == "" {
		return nil, common.ErrUnauthenticated
	}

	userID, err := r.codec.Decode(credential)
	if err != nil || !models.ValidID(userID) {
		return nil, common.ErrUnauthenticated
	}

	user, err := r.users.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, common.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return user, nil
}
