package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventcomposer/internal/domain"
)

type catalogService struct {
	store          domain.Store
	contextTimeout time.Duration
}

// NewCatalogService returns a domain.CatalogService reading each category from the
// table of the same name.
func NewCatalogService(store domain.Store, timeout time.Duration) domain.CatalogService {
	return &catalogService{store: store, contextTimeout: timeout}
}

func (s *catalogService) List(ctx context.Context, category domain.CategoryTag) ([]domain.ContentItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, err := s.store.Select(ctx, string(category), nil)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", category, err)
	}
	items := make([]domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ContentItem{
			ID:          stringField(row, "id"),
			Type:        stringField(row, "type"),
			Name:        stringField(row, "name"),
			Location:    stringField(row, "location"),
			ImageURL:    stringField(row, "image_url"),
			Description: stringField(row, "description"),
		})
	}
	return items, nil
}

// Search narrows List to the items whose name, description or location contains
// query, ignoring case. A blank query matches everything.
func (s *catalogService) Search(ctx context.Context, category domain.CategoryTag, query string) ([]domain.ContentItem, error) {
	items, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}
	matched := make([]domain.ContentItem, 0, len(items))
	for _, it := range items {
		if matchesQuery(it, query) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func matchesQuery(it domain.ContentItem, query string) bool {
	for _, field := range []string{it.Name, it.Description, it.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// stringField reads a text column; missing and NULL columns read as "".
func stringField(row domain.Row, column string) string {
	switch v := row[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
