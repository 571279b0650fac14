package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"eventcomposer/internal/domain"
	"eventcomposer/internal/saga"
)

const dateLayout = "2006-01-02"

// EventCreator runs the creation saga of a draft: validate, generate the event id,
// upload the poster, reserve ownership, persist the event and, when the event write
// fails, release the ownership reservation again.
type EventCreator struct {
	store    domain.Store
	blobs    domain.BlobStore
	identity domain.Identity
	ids      domain.IDGenerator
	notifier domain.Notifier
	logger   *slog.Logger
	location *time.Location
	timeout  time.Duration
	now      func() time.Time
}

// NewEventCreator returns a creator writing through store. Dates are interpreted in
// location; every store call gets its own timeout.
func NewEventCreator(store domain.Store,
	blobs domain.BlobStore,
	identity domain.Identity,
	ids domain.IDGenerator,
	notifier domain.Notifier,
	logger *slog.Logger,
	location *time.Location,
	timeout time.Duration,
) *EventCreator {
	if location == nil {
		location = time.UTC
	}
	return &EventCreator{
		store:    store,
		blobs:    blobs,
		identity: identity,
		ids:      ids,
		notifier: notifier,
		logger:   logger,
		location: location,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Submit creates the event composed in draft and returns its id. A draft accepts one
// submission at a time; a concurrent call returns domain.ErrAlreadyInProgress while
// the running one continues untouched. Once the ownership write starts the attempt
// runs to completion even if ctx is cancelled.
func (c *EventCreator) Submit(ctx context.Context, draft *EventDraft) (eventID string, err error) {
	if !draft.tryBegin() {
		return "", domain.ErrAlreadyInProgress
	}
	defer draft.finish()
	defer func() {
		if r := recover(); r != nil {
			eventID, err = c.fail(ctx, draft, fmt.Errorf("submission aborted: %v", r))
		}
	}()

	draft.setState(domain.StateValidating)
	snap := draft.snapshot()
	userID, _ := c.identity.CurrentUser(ctx)
	start, end, err := c.validate(snap.details, userID)
	if err != nil {
		return c.fail(ctx, draft, err)
	}

	ctx = context.WithoutCancel(ctx)
	eventID = c.ids.NewID()
	slots, requested := ConvertSlots(snap.slots)

	imageURL := ""
	if snap.poster != nil {
		draft.setState(domain.StateUploading)
		imageURL = c.uploadPoster(ctx, eventID, snap.poster)
	}

	event := &domain.Event{
		ID:              eventID,
		Name:            snap.details.Name,
		Description:     snap.details.Description,
		Type:            snap.details.Type,
		StartDate:       start,
		EndDate:         end,
		Location:        snap.details.Location,
		Capacity:        snap.details.Capacity,
		ImageURL:        imageURL,
		Tags:            deriveTags(snap.selected, snap.details.Type),
		Slots:           slots,
		RequestedItems:  requested,
		CreatedBy:       userID,
		FeaturedArtists: snap.selected[domain.CategoryArtists],
		GalleryItems:    snap.gallery,
	}
	eventRow, err := event.Row()
	if err != nil {
		return c.fail(ctx, draft, fmt.Errorf("encode event: %w", err))
	}
	ownership := domain.ContentOwnership{
		ContentID:   eventID,
		ContentType: domain.ContentTypeEvent,
		OwnerID:     userID,
	}

	sg := saga.New("create_event", c.logger.With("event_id", eventID))

	draft.setState(domain.StateReservingOwnership)
	err = sg.Run(ctx, saga.Step{
		Name: "reserve_ownership",
		Do: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			_, err := c.store.Insert(ctx, domain.TableContentOwnership, ownership.Row())
			return err
		},
		Compensate: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			return c.store.Delete(ctx, domain.TableContentOwnership, ownership.Filter())
		},
	})
	if err != nil {
		return c.fail(ctx, draft, &domain.OwnershipWriteError{Err: err})
	}

	draft.setState(domain.StatePersistingEvent)
	err = sg.Run(ctx, saga.Step{
		Name: "persist_event",
		Do: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			_, err := c.store.Insert(ctx, domain.TableEvents, eventRow)
			return err
		},
	})
	if err != nil {
		return c.fail(ctx, draft, &domain.EventWriteError{Err: err})
	}

	draft.completed(eventID)
	c.logger.InfoContext(ctx, "event created", "event_id", eventID, "owner_id", userID, "slots", len(slots), "requested_items", len(requested))
	c.notifier.Notify(ctx, domain.NotifySuccess, "Event created successfully!")
	return eventID, nil
}

// validate checks the required fields in a fixed order and returns the combined
// start and optional end timestamps.
func (c *EventCreator) validate(d domain.EventDetails, userID string) (time.Time, *time.Time, error) {
	if strings.TrimSpace(d.Name) == "" {
		return time.Time{}, nil, &domain.ValidationError{Field: "name", Message: "Event name is required"}
	}
	if d.StartDate == "" {
		return time.Time{}, nil, &domain.ValidationError{Field: "start_date", Message: "Start date is required"}
	}
	startDay, err := time.ParseInLocation(dateLayout, d.StartDate, c.location)
	if err != nil {
		return time.Time{}, nil, &domain.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"}
	}
	if d.StartTime == "" {
		return time.Time{}, nil, &domain.ValidationError{Field: "start_time", Message: "Start time is required"}
	}
	startClock, err := time.Parse(clockLayout, d.StartTime)
	if err != nil {
		return time.Time{}, nil, &domain.ValidationError{Field: "start_time", Message: "Start time must be HH:MM"}
	}
	if strings.TrimSpace(d.Location) == "" {
		return time.Time{}, nil, &domain.ValidationError{Field: "location", Message: "Location is required"}
	}
	var end *time.Time
	if d.EndDate != "" {
		endDay, err := time.ParseInLocation(dateLayout, d.EndDate, c.location)
		if err != nil {
			return time.Time{}, nil, &domain.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"}
		}
		endClock := time.Time{}
		if d.EndTime != "" {
			endClock, err = time.Parse(clockLayout, d.EndTime)
			if err != nil {
				return time.Time{}, nil, &domain.ValidationError{Field: "end_time", Message: "End time must be HH:MM"}
			}
		}
		t := c.combine(endDay, endClock)
		end = &t
	}
	if userID == "" {
		return time.Time{}, nil, domain.ErrUnauthenticated
	}
	return c.combine(startDay, startClock), end, nil
}

func (c *EventCreator) combine(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, c.location)
}

// uploadPoster stores the poster and returns its public URL, or "" when the upload
// fails. A failed upload never aborts the submission.
func (c *EventCreator) uploadPoster(ctx context.Context, eventID string, p *domain.PosterFile) string {
	path := fmt.Sprintf("event-posters/%s/%d%s", eventID, c.now().UnixMilli(), strings.ToLower(filepath.Ext(p.Name)))
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.blobs.Upload(ctx, path, p.ContentType, p.Data); err != nil {
		uerr := &domain.UploadError{Path: path, Err: err}
		c.logger.WarnContext(ctx, "poster upload failed, continuing without poster", "event_id", eventID, "err", uerr)
		c.notifier.Notify(ctx, domain.NotifyError, "Failed to upload poster image")
		return ""
	}
	return c.blobs.PublicURL(path)
}

func (c *EventCreator) fail(ctx context.Context, draft *EventDraft, err error) (string, error) {
	draft.setState(domain.StateFailed)
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, domain.ErrUnauthenticated):
		c.logger.InfoContext(ctx, "event submission rejected", "draft_id", draft.ID, "err", err)
		c.notifier.Notify(ctx, domain.NotifyError, err.Error())
	default:
		c.logger.ErrorContext(ctx, "event submission failed", "draft_id", draft.ID, "err", err)
		c.notifier.Notify(ctx, domain.NotifyError, "Failed to create event")
	}
	return "", err
}

// deriveTags collects the types of the selected artists, resources and venues plus
// the event type, deduped, in first-seen order.
func deriveTags(selected domain.SelectedObjects, eventType string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	add := func(tag string) {
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	for _, c := range []domain.CategoryTag{domain.CategoryArtists, domain.CategoryResources, domain.CategoryVenues} {
		for _, o := range selected[c] {
			add(o.Type)
		}
	}
	add(eventType)
	return out
}
