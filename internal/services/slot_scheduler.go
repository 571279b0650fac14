package services

import (
	"fmt"
	"sort"
	"time"

	"eventcomposer/internal/domain"
)

const clockLayout = "15:04"

// SlotScheduler keeps the ordered slots of a draft. It is not safe for concurrent
// use; EventDraft serialises access.
type SlotScheduler struct {
	slots []domain.EventSlot
	ids   domain.IDGenerator
}

// NewSlotScheduler returns an empty scheduler that names new slots with ids.
func NewSlotScheduler(ids domain.IDGenerator) *SlotScheduler {
	return &SlotScheduler{ids: ids}
}

// Add appends a slot spanning startTime to endTime and returns it.
func (s *SlotScheduler) Add(startTime, endTime string) domain.EventSlot {
	slot := domain.EventSlot{
		ID:        "slot_" + s.ids.NewID(),
		StartTime: startTime,
		EndTime:   endTime,
		Type:      domain.SlotOther,
	}
	s.slots = append(s.slots, slot)
	return slot.Clone()
}

// Update applies u to the slot id. A request-only slot never keeps a venue.
func (s *SlotScheduler) Update(id string, u domain.SlotUpdate) (domain.EventSlot, error) {
	i := s.index(id)
	if i < 0 {
		return domain.EventSlot{}, fmt.Errorf("slot %s: %w", id, domain.ErrNotFound)
	}
	slot := s.slots[i].Clone()
	if u.StartTime != nil {
		if !validClock(*u.StartTime) {
			return domain.EventSlot{}, fmt.Errorf("%w: startTime must be HH:MM", domain.ErrInvalidInput)
		}
		slot.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		if !validClock(*u.EndTime) {
			return domain.EventSlot{}, fmt.Errorf("%w: endTime must be HH:MM", domain.ErrInvalidInput)
		}
		slot.EndTime = *u.EndTime
	}
	if u.Title != nil {
		slot.Title = *u.Title
	}
	if u.Description != nil {
		slot.Description = *u.Description
	}
	if u.Type != nil {
		if !u.Type.Valid() {
			return domain.EventSlot{}, fmt.Errorf("%w: unknown slot type %q", domain.ErrInvalidInput, *u.Type)
		}
		slot.Type = *u.Type
	}
	if u.Artists != nil {
		slot.Artists = append([]domain.SelectedObject{}, (*u.Artists)...)
	}
	if u.Resources != nil {
		slot.Resources = append([]domain.SelectedObject{}, (*u.Resources)...)
	}
	if u.Notes != nil {
		slot.Notes = *u.Notes
	}
	if u.ClearVenue {
		slot.Venue = nil
	}
	if u.Venue != nil {
		if u.Venue.IsNew && u.Venue.Name == "" {
			return domain.EventSlot{}, fmt.Errorf("%w: a new venue needs a name", domain.ErrInvalidInput)
		}
		v := *u.Venue
		slot.Venue = &v
		slot.IsRequestOnly = false
	}
	if u.IsRequestOnly != nil {
		slot.IsRequestOnly = *u.IsRequestOnly
		if slot.IsRequestOnly {
			slot.Venue = nil
		}
	}
	s.slots[i] = slot
	return slot.Clone(), nil
}

// Remove deletes the slot id.
func (s *SlotScheduler) Remove(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("slot %s: %w", id, domain.ErrNotFound)
	}
	s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
	return nil
}

// Sort orders the slots by start time. Slots with an unreadable start time go last;
// ties keep their relative order.
func (s *SlotScheduler) Sort() {
	sort.SliceStable(s.slots, func(a, b int) bool {
		return clockMinutes(s.slots[a].StartTime) < clockMinutes(s.slots[b].StartTime)
	})
}

// Slots returns a copy of the slots in order.
func (s *SlotScheduler) Slots() []domain.EventSlot {
	out := make([]domain.EventSlot, len(s.slots))
	for i, slot := range s.slots {
		out[i] = slot.Clone()
	}
	return out
}

func (s *SlotScheduler) index(id string) int {
	for i, slot := range s.slots {
		if slot.ID == id {
			return i
		}
	}
	return -1
}

func validClock(v string) bool {
	_, err := time.Parse(clockLayout, v)
	return err == nil
}

func clockMinutes(v string) int {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 24 * 60
	}
	return t.Hour()*60 + t.Minute()
}
