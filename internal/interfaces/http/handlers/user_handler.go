package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/response"
)

type UserService interface {
	List(ctx context.Context, search string) ([]*entities.UserProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler serves the customer account views
type UserHandler struct {
	userUsecase UserService
}

func NewUserHandler(userUsecase UserService) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// List returns user profiles, optionally filtered by a search term
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUsecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// Get returns one user profile
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Delete removes a user account together with its auth credentials
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}
