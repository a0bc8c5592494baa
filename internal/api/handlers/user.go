package handlers

import (
	"net/http"

	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenIssuer issues access tokens for registered users
type TokenIssuer interface {
	Issue(userID uuid.UUID, email, role string) (string, error)
}

// RegisterResponse carries the new account and its first access token
type RegisterResponse struct {
	User        *service.UserResponse `json:"user"`
	AccessToken string                `json:"access_token"`
}

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	service service.UserServiceInterface
	tokens  TokenIssuer
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface, tokens TokenIssuer) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// Register handles POST /api/v1/users/register
// @Summary Register a new account
// @Description Creates the user together with a personal organization and default group
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterUserRequest true "Account data"
// @Success 201 {object} service.OperationResult "Account created"
// @Failure 400 {object} service.OperationResult "Invalid request"
// @Failure 409 {object} service.OperationResult "Email already registered"
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "account created", RegisterResponse{User: user, AccessToken: token})
}

// CreateUser handles POST /api/v1/users
// @Summary Create a user account
// @Description System administrators create accounts with any system role
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "Account data"
// @Success 201 {object} service.OperationResult "Account created"
// @Failure 403 {object} service.OperationResult "Not a system administrator"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "account created", user)
}

// GetCurrentUser handles GET /api/v1/users/me
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} service.OperationResult "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete a user account
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.OperationResult "Account deleted"
// @Failure 409 {object} service.OperationResult "User is still referenced"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "account deleted", nil)
}
