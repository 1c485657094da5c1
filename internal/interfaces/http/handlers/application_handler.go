package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/response"
	"laundry-scout.backend/pkg/utils"
)

type ApplicationService interface {
	List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error)
	Review(ctx context.Context, id uuid.UUID) (*entities.ApplicationReview, error)
	Approve(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error)
	Reject(ctx context.Context, id uuid.UUID, input *entities.RejectInput) (*entities.BusinessProfile, error)
	RejectionReasons() []string
}

// ApplicationHandler handles business application review endpoints
type ApplicationHandler struct {
	applicationUsecase ApplicationService
}

func NewApplicationHandler(applicationUsecase ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
	}
}

// List returns business applications matching the filter
// GET /api/v1/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	var filter entities.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profiles, total, err := h.applicationUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": profiles,
		"meta":         utils.CalculateMeta(total, filter.Page, filter.Limit),
	})
}

// Review returns one application with its resolved documents
// GET /api/v1/applications/:id
func (h *ApplicationHandler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid application ID"))
		return
	}

	review, err := h.applicationUsecase.Review(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Application not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, review)
}

// Approve marks an application approved
// POST /api/v1/applications/:id/approve
func (h *ApplicationHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid application ID"))
		return
	}

	profile, err := h.applicationUsecase.Approve(c.Request.Context(), id)
	if err != nil {
		h.reviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": profile})
}

// Reject marks an application rejected with a reason
// POST /api/v1/applications/:id/reject
func (h *ApplicationHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid application ID"))
		return
	}

	var input entities.RejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.applicationUsecase.Reject(c.Request.Context(), id, &input)
	if err != nil {
		if err == domainerrors.ErrInvalidReason {
			response.Error(c, domainerrors.BadRequest("Rejection reason is not in the allowed set"))
			return
		}
		h.reviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": profile})
}

// RejectionReasons lists the allowed rejection reasons
// GET /api/v1/applications/rejection-reasons
func (h *ApplicationHandler) RejectionReasons(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"reasons": h.applicationUsecase.RejectionReasons(),
	})
}

func (h *ApplicationHandler) reviewError(c *gin.Context, err error) {
	switch err {
	case domainerrors.ErrNotFound:
		response.Error(c, domainerrors.NotFound("Application not found"))
	case domainerrors.ErrNoRowsUpdated:
		response.Error(c, domainerrors.Conflict("Application was not updated"))
	default:
		response.Error(c, err)
	}
}
