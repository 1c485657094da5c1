package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/interfaces/http/response"
)

type DashboardService interface {
	Stats(ctx context.Context) (*entities.DashboardStats, error)
	RecentApplications(ctx context.Context, limit int) ([]*entities.BusinessProfile, error)
	Ratings(ctx context.Context) (*entities.RatingSummary, error)
	RecentHistory(ctx context.Context, limit int) ([]*entities.HistoryRecord, error)
}

// DashboardHandler serves the landing-page aggregates
type DashboardHandler struct {
	dashboardUsecase DashboardService
}

func NewDashboardHandler(dashboardUsecase DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Stats returns the four headline counters
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// RecentApplications returns the newest business applications
// GET /api/v1/dashboard/recent-applications
func (h *DashboardHandler) RecentApplications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	applications, err := h.dashboardUsecase.RecentApplications(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// Ratings returns the star histogram widget data
// GET /api/v1/dashboard/ratings
func (h *DashboardHandler) Ratings(c *gin.Context) {
	summary, err := h.dashboardUsecase.Ratings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// RecentHistory returns the newest decided applications
// GET /api/v1/dashboard/recent-history
func (h *DashboardHandler) RecentHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := h.dashboardUsecase.RecentHistory(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"history": records})
}
