package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/middleware"
	"laundry-scout.backend/internal/interfaces/http/response"
)

type SearchHistoryService interface {
	Record(ctx context.Context, adminID, page, query string) error
	List(ctx context.Context, adminID, page string) ([]string, error)
	Remove(ctx context.Context, adminID, page, query string) error
	Clear(ctx context.Context, adminID, page string) error
}

// SearchHistoryHandler keeps the per-page recent search terms
type SearchHistoryHandler struct {
	store SearchHistoryService
}

func NewSearchHistoryHandler(store SearchHistoryService) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		store: store,
	}
}

func (h *SearchHistoryHandler) page(c *gin.Context) (string, bool) {
	page := strings.TrimSpace(c.Query("page"))
	if page == "" {
		response.Error(c, domainerrors.BadRequest("page query parameter is required"))
		return "", false
	}
	return page, true
}

// List returns the recent search terms for one dashboard page
// GET /api/v1/search-history?page=clients
func (h *SearchHistoryHandler) List(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	page, ok := h.page(c)
	if !ok {
		return
	}

	terms, err := h.store.List(c.Request.Context(), adminID.String(), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"history": terms})
}

// Record stores a search term for one dashboard page
// POST /api/v1/search-history?page=clients
func (h *SearchHistoryHandler) Record(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	page, ok := h.page(c)
	if !ok {
		return
	}

	var input struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.store.Record(c.Request.Context(), adminID.String(), page, input.Query); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Recorded"})
}

// Remove deletes a single term; with no query it clears the page
// DELETE /api/v1/search-history?page=clients&query=wash
func (h *SearchHistoryHandler) Remove(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	page, ok := h.page(c)
	if !ok {
		return
	}

	query := c.Query("query")
	var err error
	if query == "" {
		err = h.store.Clear(c.Request.Context(), adminID.String(), page)
	} else {
		err = h.store.Remove(c.Request.Context(), adminID.String(), page, query)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Removed"})
}
