package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/cafeops/eventbrew/internal/catalog/repository"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/command"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/query"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/pkg/auth"
	"github.com/cafeops/eventbrew/pkg/storage"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	repo := repository.NewStoreCatalogRepository(storage.NewMemoryStore())
	if err := repo.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}

	handler := NewCatalogHandler(
		command.NewUpsertItemHandler(repo, events.Nop{}, func() string { return "test-id" }),
		command.NewToggleItemHandler(repo, events.Nop{}),
		command.NewDeleteItemHandler(repo, events.Nop{}),
		query.NewListItemsHandler(repo),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func organizerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "lead", "organizer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestListItemsFiltersByCategory(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog?category=milk", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Category string `json:"category"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || len(resp.Data) == 0 {
		t.Fatalf("response = %+v, want success with items", resp)
	}
	for _, item := range resp.Data {
		if item.Category != "milk" {
			t.Errorf("item category = %s, want milk only", item.Category)
		}
	}
}

func TestUpsertRequiresOrganizer(t *testing.T) {
	router := newTestRouter(t)
	body := `{"category":"milk","name":"Macadamia Milk","enabled":true}`

	req := httptest.NewRequest(http.MethodPost, "/api/catalog", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/catalog", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+organizerToken(t))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("organizer status = %d, want 200, body %s", rec.Code, rec.Body)
	}
}

func TestToggleItemEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/milk/oat/toggle", nil)
	req.Header.Set("Authorization", "Bearer "+organizerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data struct {
			Enabled bool `json:"enabled"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Enabled {
		t.Error("oat milk still enabled after toggle")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/catalog/milk/missing/toggle", nil)
	req.Header.Set("Authorization", "Bearer "+organizerToken(t))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing item status = %d, want 404", rec.Code)
	}
}
