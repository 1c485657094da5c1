package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/response"
	"laundry-scout.backend/pkg/utils"
)

type HistoryService interface {
	List(ctx context.Context, filter entities.ListFilter) ([]*entities.HistoryRecord, int64, error)
}

// HistoryHandler serves the approval/rejection history view
type HistoryHandler struct {
	historyUsecase HistoryService
}

func NewHistoryHandler(historyUsecase HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyUsecase: historyUsecase,
	}
}

// List returns decided applications as history records
// GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	var filter entities.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	records, total, err := h.historyUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"history": records,
		"meta":    utils.CalculateMeta(total, filter.Page, filter.Limit),
	})
}
