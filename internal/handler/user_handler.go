package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retroexchange/backend/internal/auth"
	"retroexchange/backend/internal/models"
	"retroexchange/backend/internal/service"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"johndoe@gmail.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Address  string `json:"address" binding:"required" example:"123 Main St, Anytown, USA"`
}

// LoginInput is the OAuth2 password form. The username is the user's email.
type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required" example:"johndoe@gmail.com"`
	Password string `form:"password" json:"password" binding:"required" example:"secret123"`
}

// TokenResponse carries the bearer credential.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"5d1f0c9e-8a7b-4c3d-9e2f-1a0b3c4d5e6f"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// UserUpdateInput lists the updatable user fields; omitted or null fields are left unchanged.
type UserUpdateInput = models.UserUpdate

// endregion

// region --- Auth Handlers ---

// LoginUser godoc
// @Summary      Log in a user
// @Description  Exchanges an email and password for a bearer credential.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "Email"
// @Param        password formData string true "Password"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse
// @Router       /token [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.users.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// endregion

// region --- User Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user. The email must not be registered yet.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or email already registered"
// @Failure      500  {object}  ErrorResponse
// @Router       /users [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.NewUser{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(*user))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile of a user.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse "Invalid user ID"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Partially updates the caller's own profile. Only supplied fields change.
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string           true  "User ID"
// @Param        input body      UserUpdateInput  true  "Fields to change"
// @Success      204
// @Failure      400  {object}  ErrorResponse "No data provided for update"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not authorized to update this user"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	err := h.users.Update(c.Request.Context(), auth.CurrentUser(c), c.Param("id"), func(upd *models.UserUpdate) error {
		return c.ShouldBindJSON(upd)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// endregion
