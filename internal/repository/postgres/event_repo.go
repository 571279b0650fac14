package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventcomposer/internal/domain"

	"github.com/lib/pq"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, description, type, start_date, end_date, location, capacity, image_url,
		       tags, slots, requested_items, created_by, featured_artists, gallery_items
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var descNull, typeNull, locationNull, imageNull, createdByNull sql.NullString
	var endNull sql.NullTime
	var capacityNull sql.NullInt64
	var tags pq.StringArray
	var slots, requested, featured, gallery []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &descNull, &typeNull, &e.StartDate, &endNull, &locationNull, &capacityNull, &imageNull,
		&tags, &slots, &requested, &createdByNull, &featured, &gallery,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Description = descNull.String
	e.Type = typeNull.String
	e.Location = locationNull.String
	e.ImageURL = imageNull.String
	e.CreatedBy = createdByNull.String
	if endNull.Valid {
		e.EndDate = &endNull.Time
	}
	if capacityNull.Valid {
		c := int(capacityNull.Int64)
		e.Capacity = &c
	}
	e.Tags = []string(tags)
	if e.Tags == nil {
		e.Tags = []string{}
	}

	payloads := []struct {
		column string
		raw    []byte
		dest   any
	}{
		{"slots", slots, &e.Slots},
		{"requested_items", requested, &e.RequestedItems},
		{"featured_artists", featured, &e.FeaturedArtists},
		{"gallery_items", gallery, &e.GalleryItems},
	}
	for _, p := range payloads {
		if len(p.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(p.raw, p.dest); err != nil {
			return nil, fmt.Errorf("decode %s of event %s: %w", p.column, id, err)
		}
	}
	return e, nil
}
