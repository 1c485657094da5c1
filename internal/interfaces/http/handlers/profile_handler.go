package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/middleware"
	"laundry-scout.backend/internal/interfaces/http/response"
)

type ProfileService interface {
	Get(ctx context.Context, adminID uuid.UUID) (*entities.Admin, error)
	Update(ctx context.Context, adminID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Admin, error)
	SetAvatar(ctx context.Context, adminID uuid.UUID, path string) (string, error)
	GetSettings(ctx context.Context, adminID uuid.UUID) (*entities.Preferences, error)
	UpdateSettings(ctx context.Context, adminID uuid.UUID, prefs *entities.Preferences) error
}

// ProfileHandler serves the admin profile and settings endpoints
type ProfileHandler struct {
	profileUsecase ProfileService
}

func NewProfileHandler(profileUsecase ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

// Get returns the authenticated admin's profile
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	admin, err := h.profileUsecase.Get(c.Request.Context(), adminID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": admin})
}

// Update patches profile fields; absent fields are left untouched
// PATCH /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	admin, err := h.profileUsecase.Update(c.Request.Context(), adminID, &input)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Username must not be empty"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": admin})
}

// SetAvatar records an uploaded avatar path and returns its public URL
// PUT /api/v1/profile/avatar
func (h *ProfileHandler) SetAvatar(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	url, err := h.profileUsecase.SetAvatar(c.Request.Context(), adminID, input.Path)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Avatar path must not be empty"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"avatarUrl": url})
}

// GetSettings returns the admin's dashboard preferences
// GET /api/v1/settings
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	prefs, err := h.profileUsecase.GetSettings(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, prefs)
}

// UpdateSettings replaces the admin's dashboard preferences
// PUT /api/v1/settings
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var prefs entities.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.profileUsecase.UpdateSettings(c.Request.Context(), adminID, &prefs); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Settings saved"})
}
