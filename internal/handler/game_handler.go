package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retroexchange/backend/internal/auth"
	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/service"
)

// region --- DTOs ---

// GameInput defines the structure for listing a game.
type GameInput struct {
	Name           string `json:"name" binding:"required" example:"Super Mario Bros."`
	Publisher      string `json:"publisher" binding:"required" example:"Nintendo"`
	YearPublished  *int   `json:"year_published" binding:"required" example:"1985"`
	System         string `json:"system" binding:"required" example:"NES"`
	Condition      string `json:"condition" binding:"required" example:"Good"`
	PreviousOwners *int   `json:"previous_owners" example:"2"`
}

// GameUpdateInput lists the updatable game fields; omitted or null fields are left unchanged.
type GameUpdateInput = models.GameUpdate

// endregion

// CreateGame godoc
// @Summary      List a game
// @Description  Creates a game listing owned by owner_id. previous_owners defaults to 0.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        owner_id query     string     true  "Owner user ID"
// @Param        input    body      GameInput  true  "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Owner not found"
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	game, err := h.games.Create(c.Request.Context(), auth.CurrentUser(c), c.Query("owner_id"), service.NewGame{
		Name:           input.Name,
		Publisher:      input.Publisher,
		YearPublished:  *input.YearPublished,
		System:         input.System,
		Condition:      input.Condition,
		PreviousOwners: input.PreviousOwners,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game listing.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse "Invalid game ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	game, err := h.games.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Partially updates a listing owned by the caller. Only supplied fields change.
// @Tags         games
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string           true  "Game ID"
// @Param        input body      GameUpdateInput  true  "Fields to change"
// @Success      204
// @Failure      400  {object}  ErrorResponse "No data provided for update"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "You do not own this game"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	err := h.games.Update(c.Request.Context(), auth.CurrentUser(c), c.Param("id"), func(upd *models.GameUpdate) error {
		return c.ShouldBindJSON(upd)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Removes a listing. Requires the owner's credential only when strict ownership is enabled.
// @Tags         games
// @Param        id path string true "Game ID"
// @Success      204
// @Failure      400 {object} ErrorResponse "Invalid game ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	if err := h.games.Delete(c.Request.Context(), auth.CurrentUser(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGames godoc
// @Summary      Search games
// @Description  Lists games whose name and system contain the given values, ignoring case.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        name    query     string  false  "Name substring"
// @Param        system  query     string  false  "System substring"
// @Success      200 {array} GameResponse
// @Failure      401 {object} ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.games.Search(c.Request.Context(), auth.CurrentUser(c), models.GameFilter{
		Name:   c.Query("name"),
		System: c.Query("system"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponses(games))
}
