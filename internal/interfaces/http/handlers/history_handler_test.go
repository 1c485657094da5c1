package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/internal/domain/entities"
)

type historyServiceStub struct {
	listFn func(ctx context.Context, filter entities.ListFilter) ([]*entities.HistoryRecord, int64, error)
}

func (s historyServiceStub) List(ctx context.Context, filter entities.ListFilter) ([]*entities.HistoryRecord, int64, error) {
	return s.listFn(ctx, filter)
}

func TestHistoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHistoryHandler(historyServiceStub{
		listFn: func(_ context.Context, filter entities.ListFilter) ([]*entities.HistoryRecord, int64, error) {
			if filter.From == nil || filter.To == nil {
				t.Fatal("expected date range bound to the filter")
			}
			return []*entities.HistoryRecord{
				{BusinessName: "Sparkle Wash", Action: entities.HistoryActionRejection},
			}, 1, nil
		},
	})
	r.GET("/history", h.List)

	req := httptest.NewRequest(http.MethodGet, "/history?from=2024-12-19&to=2024-12-20&page=1&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Rejection") {
		t.Fatalf("expected action label in body, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"meta"`) {
		t.Fatalf("expected pagination meta in body, got %s", w.Body.String())
	}
}

func TestHistoryHandler_List_BadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHistoryHandler(historyServiceStub{
		listFn: func(context.Context, entities.ListFilter) ([]*entities.HistoryRecord, int64, error) {
			t.Fatal("should not be called")
			return nil, 0, nil
		},
	})
	r.GET("/history", h.List)

	req := httptest.NewRequest(http.MethodGet, "/history?from=19-12-2024", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
