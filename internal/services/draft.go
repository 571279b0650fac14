package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"eventcomposer/internal/domain"
)

// EventDraft is the composition state of one event being assembled: form details,
// category selections, slots, gallery and poster. Its methods are safe for concurrent
// use. The submission latch is separate from the state lock so the draft stays
// editable while a submission runs.
type EventDraft struct {
	ID        string
	OwnerID   string
	CreatedAt time.Time

	mu          sync.RWMutex
	details     domain.EventDetails
	selection   *SelectionStore
	slots       *SlotScheduler
	gallery     []domain.SelectedObject
	poster      *domain.PosterFile
	state       domain.SubmissionState
	lastEventID string

	submitting atomic.Bool
}

// NewEventDraft returns an empty draft of ownerID.
func NewEventDraft(id, ownerID string, ids domain.IDGenerator, createdAt time.Time) *EventDraft {
	return &EventDraft{
		ID:        id,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		selection: NewSelectionStore(),
		slots:     NewSlotScheduler(ids),
		gallery:   []domain.SelectedObject{},
		state:     domain.StateIdle,
	}
}

// LoadCatalog replaces the list of category with the given catalog items.
func (d *EventDraft) LoadCatalog(category domain.CategoryTag, items []domain.ContentItem) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection.Load(category, items)
}

// SetDetails replaces the form details.
func (d *EventDraft) SetDetails(details domain.EventDetails) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.details = details
}

// Toggle flips the selection of one item.
func (d *EventDraft) Toggle(category domain.CategoryTag, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection.Toggle(category, id)
}

// ApplyGroup merges a component group into the selection as one state transition.
func (d *EventDraft) ApplyGroup(group domain.ComponentGroup) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ApplyGroup(d.selection, group)
}

// SelectedObjects returns the current selected projection.
func (d *EventDraft) SelectedObjects() domain.SelectedObjects {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selection.SelectedObjects()
}

// AddSlot appends a slot defaulting to the event's start and end times.
func (d *EventDraft) AddSlot() domain.EventSlot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.slots.Add(d.details.StartTime, d.details.EndTime)
}

// UpdateSlot changes a slot. Artists, resources and existing venues must be among
// the current selections.
func (d *EventDraft) UpdateSlot(id string, u domain.SlotUpdate) (domain.EventSlot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u.Artists != nil {
		if err := d.requireSelected(domain.CategoryArtists, *u.Artists); err != nil {
			return domain.EventSlot{}, err
		}
	}
	if u.Resources != nil {
		if err := d.requireSelected(domain.CategoryResources, *u.Resources); err != nil {
			return domain.EventSlot{}, err
		}
	}
	if u.Venue != nil && !u.Venue.IsNew && !d.selection.IsSelected(domain.CategoryVenues, u.Venue.ID) {
		return domain.EventSlot{}, fmt.Errorf("%w: venue %s is not selected", domain.ErrInvalidInput, u.Venue.ID)
	}
	return d.slots.Update(id, u)
}

func (d *EventDraft) requireSelected(category domain.CategoryTag, objs []domain.SelectedObject) error {
	for _, o := range objs {
		if !d.selection.IsSelected(category, o.ID) {
			return fmt.Errorf("%w: %s %s is not selected", domain.ErrInvalidInput, category, o.ID)
		}
	}
	return nil
}

// liveSlots returns the slots with references to artists, resources and existing
// venues that are no longer selected left out. The stored slots keep them, so
// selecting an item again restores it. The caller holds d.mu.
func (d *EventDraft) liveSlots() []domain.EventSlot {
	slots := d.slots.Slots()
	for i := range slots {
		slots[i].Artists = d.keepSelected(domain.CategoryArtists, slots[i].Artists)
		slots[i].Resources = d.keepSelected(domain.CategoryResources, slots[i].Resources)
		if v := slots[i].Venue; v != nil && !v.IsNew && !d.selection.IsSelected(domain.CategoryVenues, v.ID) {
			slots[i].Venue = nil
		}
	}
	return slots
}

func (d *EventDraft) keepSelected(category domain.CategoryTag, objs []domain.SelectedObject) []domain.SelectedObject {
	var kept []domain.SelectedObject
	for _, o := range objs {
		if d.selection.IsSelected(category, o.ID) {
			kept = append(kept, o)
		}
	}
	return kept
}

// RemoveSlot deletes a slot.
func (d *EventDraft) RemoveSlot(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.slots.Remove(id)
}

// SortSlots orders the slots by start time and returns them.
func (d *EventDraft) SortSlots() []domain.EventSlot {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slots.Sort()
	return d.liveSlots()
}

// SetGallery replaces the gallery with the referenced catalog items.
func (d *EventDraft) SetGallery(refs []domain.ItemRef) ([]domain.SelectedObject, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	gallery := make([]domain.SelectedObject, 0, len(refs))
	for _, ref := range refs {
		if !ref.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, ref.Category)
		}
		it, ok := d.selection.Find(ref.Category, ref.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s is not in the catalog", domain.ErrInvalidInput, ref.Category, ref.ID)
		}
		gallery = append(gallery, it.Object())
	}
	d.gallery = gallery
	return append([]domain.SelectedObject{}, gallery...), nil
}

// AttachPoster sets the poster uploaded on the next submission.
func (d *EventDraft) AttachPoster(p domain.PosterFile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.poster = &p
}

// Convert runs the request converter over the current slots, as liveSlots sees them.
func (d *EventDraft) Convert() ([]domain.EventSlot, []domain.RequestedItem) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return ConvertSlots(d.liveSlots())
}

// Submitting reports whether a submission is in flight.
func (d *EventDraft) Submitting() bool {
	return d.submitting.Load()
}

// tryBegin takes the submission latch. It returns false, without touching the
// latch, when a submission is already in flight.
func (d *EventDraft) tryBegin() bool {
	return d.submitting.CompareAndSwap(false, true)
}

func (d *EventDraft) finish() {
	d.submitting.Store(false)
}

func (d *EventDraft) setState(s domain.SubmissionState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = s
}

func (d *EventDraft) completed(eventID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = domain.StateCompleted
	d.lastEventID = eventID
}

// draftSnapshot is the state a submission works from.
type draftSnapshot struct {
	details  domain.EventDetails
	selected domain.SelectedObjects
	slots    []domain.EventSlot
	gallery  []domain.SelectedObject
	poster   *domain.PosterFile
}

func (d *EventDraft) snapshot() draftSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	snap := draftSnapshot{
		details:  d.details,
		selected: d.selection.SelectedObjects(),
		slots:    d.liveSlots(),
		gallery:  append([]domain.SelectedObject{}, d.gallery...),
	}
	if d.poster != nil {
		p := *d.poster
		snap.poster = &p
	}
	return snap
}

// View returns a presentation snapshot of the draft.
func (d *EventDraft) View() *domain.DraftView {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return &domain.DraftView{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Details:         d.details,
		Lists:           d.selection.Lists(),
		SelectedObjects: d.selection.SelectedObjects(),
		Slots:           d.liveSlots(),
		GalleryItems:    append([]domain.SelectedObject{}, d.gallery...),
		HasPoster:       d.poster != nil,
		Submitting:      d.submitting.Load(),
		State:           d.state,
		LastEventID:     d.lastEventID,
		CreatedAt:       d.CreatedAt,
	}
}
