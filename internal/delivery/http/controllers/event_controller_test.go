package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventcomposer/internal/delivery/http/helpers"
	"eventcomposer/internal/domain"
)

type mockEventService struct {
	detail *domain.EventDetail
	err    error
	gotID  string
}

func (m *mockEventService) GetEvent(ctx context.Context, eventID string) (*domain.EventDetail, error) {
	m.gotID = eventID
	return m.detail, m.err
}

type mockCatalogService struct {
	items       []domain.ContentItem
	err         error
	gotCategory domain.CategoryTag
	gotQuery    string
}

func (m *mockCatalogService) List(ctx context.Context, category domain.CategoryTag) ([]domain.ContentItem, error) {
	m.gotCategory = category
	return m.items, m.err
}

func (m *mockCatalogService) Search(ctx context.Context, category domain.CategoryTag, query string) ([]domain.ContentItem, error) {
	m.gotQuery = query
	return m.List(ctx, category)
}

func TestEventController_GetEvent(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockEventService{detail: &domain.EventDetail{
			Event:   &domain.Event{ID: "ev-1", Name: "Launch Party", StartDate: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)},
			OwnerID: "u1",
		}}
		ctrl := NewEventController(testLogger(), svc, &mockCatalogService{})
		req := authed(httptest.NewRequest(http.MethodGet, "/events/ev-1", nil), "u1")
		req.SetPathValue("eventID", "ev-1")
		w := httptest.NewRecorder()
		ctrl.GetEvent(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var resp EventSuccessResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Data == nil || resp.Data.Event == nil || resp.Data.Event.ID != "ev-1" || resp.Data.OwnerID != "u1" {
			t.Fatalf("unexpected detail %+v", resp.Data)
		}
		if svc.gotID != "ev-1" {
			t.Errorf("expected ev-1, got %q", svc.gotID)
		}
	})
	t.Run("not found", func(t *testing.T) {
		ctrl := NewEventController(testLogger(), &mockEventService{err: domain.ErrNotFound}, &mockCatalogService{})
		req := authed(httptest.NewRequest(http.MethodGet, "/events/ev-404", nil), "u1")
		req.SetPathValue("eventID", "ev-404")
		w := httptest.NewRecorder()
		ctrl.GetEvent(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
	t.Run("internal error is hidden", func(t *testing.T) {
		ctrl := NewEventController(testLogger(), &mockEventService{err: errors.New("pq: connection refused")}, &mockCatalogService{})
		req := authed(httptest.NewRequest(http.MethodGet, "/events/ev-1", nil), "u1")
		req.SetPathValue("eventID", "ev-1")
		w := httptest.NewRecorder()
		ctrl.GetEvent(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if e := decodeError(t, w); e == nil || e.Message != "internal server error" {
			t.Fatalf("expected generic message, got %+v", e)
		}
	})
}

func TestEventController_ListCatalog(t *testing.T) {
	items := make([]domain.ContentItem, 5)
	for i := range items {
		items[i] = domain.ContentItem{ID: fmt.Sprintf("a%d", i+1), Type: "dj", Name: fmt.Sprintf("DJ %d", i+1)}
	}

	t.Run("paginated", func(t *testing.T) {
		catalog := &mockCatalogService{items: items}
		ctrl := NewEventController(testLogger(), &mockEventService{}, catalog)
		req := authed(httptest.NewRequest(http.MethodGet, "/catalog/artists?page=2&page_size=2", nil), "u1")
		req.SetPathValue("category", "artists")
		w := httptest.NewRecorder()
		ctrl.ListCatalog(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var resp CatalogSuccessResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Data == nil || len(resp.Data.Items) != 2 || resp.Data.Items[0].ID != "a3" {
			t.Fatalf("unexpected page %+v", resp.Data)
		}
		want := helpers.PaginationMeta{Page: 2, PageSize: 2, Total: 5, TotalPages: 3}
		if resp.Data.Pagination != want {
			t.Errorf("expected %+v, got %+v", want, resp.Data.Pagination)
		}
		if catalog.gotCategory != domain.CategoryArtists {
			t.Errorf("expected artists, got %q", catalog.gotCategory)
		}
	})
	t.Run("search query forwarded before paging", func(t *testing.T) {
		catalog := &mockCatalogService{items: items[:1]}
		ctrl := NewEventController(testLogger(), &mockEventService{}, catalog)
		req := authed(httptest.NewRequest(http.MethodGet, "/catalog/artists?q=DJ+1&page_size=10", nil), "u1")
		req.SetPathValue("category", "artists")
		w := httptest.NewRecorder()
		ctrl.ListCatalog(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		if catalog.gotQuery != "DJ 1" {
			t.Errorf("expected query %q, got %q", "DJ 1", catalog.gotQuery)
		}
		var resp CatalogSuccessResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Data == nil || resp.Data.Pagination.Total != 1 {
			t.Fatalf("expected one matching item, got %+v", resp.Data)
		}
	})
	t.Run("unknown category", func(t *testing.T) {
		catalog := &mockCatalogService{}
		ctrl := NewEventController(testLogger(), &mockEventService{}, catalog)
		req := authed(httptest.NewRequest(http.MethodGet, "/catalog/sponsors", nil), "u1")
		req.SetPathValue("category", "sponsors")
		w := httptest.NewRecorder()
		ctrl.ListCatalog(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
		if catalog.gotCategory != "" {
			t.Errorf("catalog should not be queried for an unknown category")
		}
	})
	t.Run("catalog failure", func(t *testing.T) {
		ctrl := NewEventController(testLogger(), &mockEventService{}, &mockCatalogService{err: errors.New("timeout")})
		req := authed(httptest.NewRequest(http.MethodGet, "/catalog/venues", nil), "u1")
		req.SetPathValue("category", "venues")
		w := httptest.NewRecorder()
		ctrl.ListCatalog(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}
