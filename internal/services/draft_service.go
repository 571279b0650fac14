package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventcomposer/internal/domain"
)

type draftService struct {
	catalog        domain.CatalogService
	groups         *GroupLibrary
	creator        *EventCreator
	ids            domain.IDGenerator
	logger         *slog.Logger
	contextTimeout time.Duration

	mu     sync.RWMutex
	drafts map[string]*EventDraft
}

// NewDraftService returns a domain.DraftService keeping drafts in memory.
func NewDraftService(catalog domain.CatalogService,
	groups *GroupLibrary,
	creator *EventCreator,
	ids domain.IDGenerator,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DraftService {
	return &draftService{
		catalog:        catalog,
		groups:         groups,
		creator:        creator,
		ids:            ids,
		logger:         logger,
		contextTimeout: timeout,
		drafts:         make(map[string]*EventDraft),
	}
}

func (s *draftService) CreateDraft(ctx context.Context, ownerID string) (*domain.DraftView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	draft := NewEventDraft(s.ids.NewID(), ownerID, s.ids, time.Now())
	for _, c := range domain.Categories {
		items, err := s.catalog.List(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("load %s catalog: %w", c, err)
		}
		if err := draft.LoadCatalog(c, items); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "draft created", "draft_id", draft.ID, "owner_id", ownerID)
	return draft.View(), nil
}

// draft returns the draft id when it belongs to ownerID. Drafts of other users are
// reported as not found.
func (s *draftService) draft(ownerID, id string) (*EventDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[id]
	if !ok || d.OwnerID != ownerID {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

func (s *draftService) GetDraft(ctx context.Context, ownerID, draftID string) (*domain.DraftView, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return d.View(), nil
}

func (s *draftService) DiscardDraft(ctx context.Context, ownerID, draftID string) error {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return err
	}
	if d.Submitting() {
		return domain.ErrAlreadyInProgress
	}
	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()
	return nil
}

func (s *draftService) UpdateDetails(ctx context.Context, ownerID, draftID string, details domain.EventDetails) (*domain.DraftView, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	d.SetDetails(details)
	return d.View(), nil
}

func (s *draftService) Toggle(ctx context.Context, ownerID, draftID string, category domain.CategoryTag, itemID string) (*domain.DraftView, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	if err := d.Toggle(category, itemID); err != nil {
		return nil, err
	}
	return d.View(), nil
}

func (s *draftService) ApplyGroup(ctx context.Context, ownerID, draftID, groupID string, inline *domain.ComponentGroup) (*domain.DraftView, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	var group domain.ComponentGroup
	switch {
	case inline != nil:
		group = *inline
	case groupID != "":
		group, err = s.groups.Get(ownerID, groupID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: group_id or group is required", domain.ErrInvalidInput)
	}
	if err := d.ApplyGroup(group); err != nil {
		return nil, err
	}
	return d.View(), nil
}

func (s *draftService) AddSlot(ctx context.Context, ownerID, draftID string) (*domain.EventSlot, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	slot := d.AddSlot()
	return &slot, nil
}

func (s *draftService) UpdateSlot(ctx context.Context, ownerID, draftID, slotID string, update domain.SlotUpdate) (*domain.EventSlot, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	slot, err := d.UpdateSlot(slotID, update)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *draftService) RemoveSlot(ctx context.Context, ownerID, draftID, slotID string) error {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return err
	}
	return d.RemoveSlot(slotID)
}

func (s *draftService) SortSlots(ctx context.Context, ownerID, draftID string) ([]domain.EventSlot, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return d.SortSlots(), nil
}

func (s *draftService) SetGallery(ctx context.Context, ownerID, draftID string, refs []domain.ItemRef) ([]domain.SelectedObject, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return d.SetGallery(refs)
}

func (s *draftService) AttachPoster(ctx context.Context, ownerID, draftID string, poster domain.PosterFile) error {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return err
	}
	if len(poster.Data) == 0 {
		return fmt.Errorf("%w: poster is empty", domain.ErrInvalidInput)
	}
	d.AttachPoster(poster)
	return nil
}

func (s *draftService) Submit(ctx context.Context, ownerID, draftID string) (string, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return "", err
	}
	return s.creator.Submit(ctx, d)
}

func (s *draftService) SaveGroup(ctx context.Context, ownerID, draftID, name, description string) (*domain.ComponentGroup, error) {
	d, err := s.draft(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return s.groups.Save(ownerID, name, description, d.SelectedObjects())
}

func (s *draftService) ListGroups(ctx context.Context, ownerID string) ([]domain.ComponentGroup, error) {
	return s.groups.List(ownerID), nil
}

func (s *draftService) DeleteGroup(ctx context.Context, ownerID, groupID string) error {
	return s.groups.Delete(ownerID, groupID)
}
