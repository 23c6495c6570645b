package handler

import "retroexchange/backend/internal/models"

// Link is a navigation hyperlink attached to a resource.
type Link struct {
	Href   string `json:"href" example:"/games/0b7e4c1a-5f3d-4c2e-9a61-2d4f8e9b1c00"`
	Method string `json:"method,omitempty" example:"PUT"`
}

// UserLinks are the hyperlinks of a user representation.
type UserLinks struct {
	Self   Link `json:"self"`
	Update Link `json:"update"`
}

// UserResponse is the public representation of a user. The password hash is never included.
type UserResponse struct {
	ID      string    `json:"id" example:"5d1f0c9e-8a7b-4c3d-9e2f-1a0b3c4d5e6f"`
	Name    string    `json:"name" example:"John Doe"`
	Email   string    `json:"email" example:"johndoe@gmail.com"`
	Address string    `json:"address" example:"123 Main St, Anytown, USA"`
	Links   UserLinks `json:"_links"`
}

// GameLinks are the hyperlinks of a game representation.
type GameLinks struct {
	Self   Link `json:"self"`
	Owner  Link `json:"owner"`
	Update Link `json:"update"`
	Delete Link `json:"delete"`
}

// GameResponse is the public representation of a game listing.
type GameResponse struct {
	ID             string    `json:"id" example:"0b7e4c1a-5f3d-4c2e-9a61-2d4f8e9b1c00"`
	Name           string    `json:"name" example:"Super Mario Bros."`
	Publisher      string    `json:"publisher" example:"Nintendo"`
	YearPublished  int       `json:"year_published" example:"1985"`
	System         string    `json:"system" example:"NES"`
	Condition      string    `json:"condition" example:"Good"`
	PreviousOwners int       `json:"previous_owners" example:"2"`
	OwnerID        string    `json:"owner_id" example:"5d1f0c9e-8a7b-4c3d-9e2f-1a0b3c4d5e6f"`
	Links          GameLinks `json:"_links"`
}

func userPath(id string) string { return "/users/" + id }
func gamePath(id string) string { return "/games/" + id }

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Links: UserLinks{
			Self:   Link{Href: userPath(user.ID)},
			Update: Link{Href: userPath(user.ID), Method: "PUT"},
		},
	}
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:             game.ID,
		Name:           game.Name,
		Publisher:      game.Publisher,
		YearPublished:  game.YearPublished,
		System:         game.System,
		Condition:      game.Condition,
		PreviousOwners: game.PreviousOwners,
		OwnerID:        game.OwnerID,
		Links: GameLinks{
			Self:   Link{Href: gamePath(game.ID)},
			Owner:  Link{Href: userPath(game.OwnerID)},
			Update: Link{Href: gamePath(game.ID), Method: "PUT"},
			Delete: Link{Href: gamePath(game.ID), Method: "DELETE"},
		},
	}
}

func newGameResponses(games []models.Game) []GameResponse {
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	return response
}
