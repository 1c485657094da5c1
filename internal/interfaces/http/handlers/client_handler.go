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

type ClientService interface {
	List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error)
}

// ClientHandler serves the approved-business (client) views
type ClientHandler struct {
	clientUsecase ClientService
}

func NewClientHandler(clientUsecase ClientService) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
	}
}

// List returns approved businesses
// GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter entities.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	clients, total, err := h.clientUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"clients": clients,
		"meta":    utils.CalculateMeta(total, filter.Page, filter.Limit),
	})
}

// Get returns one approved business
// GET /api/v1/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid client ID"))
		return
	}

	client, err := h.clientUsecase.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound, domainerrors.ErrNotApproved:
			response.Error(c, domainerrors.NotFound("Client not found"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"client": client})
}
