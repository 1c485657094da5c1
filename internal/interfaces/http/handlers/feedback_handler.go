package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/interfaces/http/response"
)

type FeedbackService interface {
	List(ctx context.Context, feedbackType string) ([]*entities.FeedbackView, error)
	Summary(ctx context.Context) (*entities.RatingSummary, error)
}

// FeedbackHandler serves customer feedback views
type FeedbackHandler struct {
	feedbackUsecase FeedbackService
}

func NewFeedbackHandler(feedbackUsecase FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
	}
}

// List returns feedback entries, optionally filtered by type
// GET /api/v1/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.feedbackUsecase.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"feedback": items})
}

// Summary returns the star-bucket rating distribution
// GET /api/v1/feedback/summary
func (h *FeedbackHandler) Summary(c *gin.Context) {
	summary, err := h.feedbackUsecase.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
