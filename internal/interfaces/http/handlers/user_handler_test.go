package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
)

type userServiceStub struct {
	listFn   func(ctx context.Context, search string) ([]*entities.UserProfile, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s userServiceStub) List(ctx context.Context, search string) ([]*entities.UserProfile, error) {
	return s.listFn(ctx, search)
}

func (s userServiceStub) Get(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	return s.getFn(ctx, id)
}

func (s userServiceStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func TestUserHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewUserHandler(userServiceStub{
		listFn: func(_ context.Context, search string) ([]*entities.UserProfile, error) {
			if search != "anna" {
				t.Fatalf("expected search term to pass through, got %q", search)
			}
			return []*entities.UserProfile{{ID: uuid.New()}}, nil
		},
	})
	r.GET("/users", h.List)

	req := httptest.NewRequest(http.MethodGet, "/users?search=anna", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestUserHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		id := uuid.New()
		var deleted uuid.UUID
		h := NewUserHandler(userServiceStub{
			deleteFn: func(_ context.Context, got uuid.UUID) error {
				deleted = got
				return nil
			},
		})
		r.DELETE("/users/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/users/"+id.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if deleted != id {
			t.Fatalf("expected %s deleted, got %s", id, deleted)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r := gin.New()
		h := NewUserHandler(userServiceStub{
			deleteFn: func(context.Context, uuid.UUID) error {
				return domainerrors.ErrNotFound
			},
		})
		r.DELETE("/users/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/users/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		r := gin.New()
		h := NewUserHandler(userServiceStub{})
		r.DELETE("/users/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/users/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
