package auth

import (
	"retroexchange/backend/internal/common"
	"retroexchange/backend/internal/models"
)

// AuthorizeUserMutation allows a user to modify only their own record.
func AuthorizeUserMutation(actor, target *models.User) error {
	if actor == nil {
		return common.ErrUnauthenticated
	}
	if actor.ID != target.ID {
		return common.Errorf(common.ErrForbidden, "Not authorized to update this user")
	}
	return nil
}

// AuthorizeGameMutation allows only the listing owner to modify a game.
func AuthorizeGameMutation(actor *models.User, game *models.Game) error {
	if actor == nil {
		return common.ErrUnauthenticated
	}
	if actor.ID != game.OwnerID {
		return common.Errorf(common.ErrForbidden, "You do not own this game")
	}
	return nil
}
