package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/internal/interfaces/http/handlers"
)

func testRouteDeps() routeDeps {
	return routeDeps{
		authHandler:          &handlers.AuthHandler{},
		applicationHandler:   &handlers.ApplicationHandler{},
		clientHandler:        &handlers.ClientHandler{},
		userHandler:          &handlers.UserHandler{},
		historyHandler:       &handlers.HistoryHandler{},
		feedbackHandler:      &handlers.FeedbackHandler{},
		dashboardHandler:     &handlers.DashboardHandler{},
		notificationHandler:  &handlers.NotificationHandler{},
		profileHandler:       &handlers.ProfileHandler{},
		searchHistoryHandler: &handlers.SearchHistoryHandler{},
		authMiddleware:       func(c *gin.Context) { c.Next() },
	}
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, testRouteDeps())

	routes := r.Routes()
	if len(routes) < 25 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"GET", "/api/v1/auth/me"},
		{"GET", "/api/v1/applications"},
		{"POST", "/api/v1/applications/:id/approve"},
		{"POST", "/api/v1/applications/:id/reject"},
		{"GET", "/api/v1/applications/rejection-reasons"},
		{"GET", "/api/v1/clients/:id"},
		{"DELETE", "/api/v1/users/:id"},
		{"GET", "/api/v1/history"},
		{"GET", "/api/v1/feedback/summary"},
		{"GET", "/api/v1/dashboard/stats"},
		{"GET", "/api/v1/dashboard/ratings"},
		{"GET", "/api/v1/dashboard/recent-history"},
		{"GET", "/api/v1/notifications/stream"},
		{"POST", "/api/v1/notifications/push"},
		{"PATCH", "/api/v1/profile"},
		{"PUT", "/api/v1/settings"},
		{"DELETE", "/api/v1/search-history"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, testRouteDeps())

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
