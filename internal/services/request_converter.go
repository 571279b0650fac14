package services

import (
	"strings"

	"eventcomposer/internal/domain"
)

// ConvertSlots turns ad-hoc "new venue" slots into requested items. Slots without a
// venue or with an existing venue are copied unchanged. A slot with a new venue is
// copied with the venue cleared, marked request-only and its notes extended with the
// venue details. The input is never modified.
func ConvertSlots(slots []domain.EventSlot) ([]domain.EventSlot, []domain.RequestedItem) {
	processed := make([]domain.EventSlot, 0, len(slots))
	requested := []domain.RequestedItem{}
	for _, slot := range slots {
		out := slot.Clone()
		if slot.Venue == nil || !slot.Venue.IsNew {
			processed = append(processed, out)
			continue
		}
		v := slot.Venue
		id := v.ID
		if id == "" {
			id = "requested-" + slot.ID
		}
		requested = append(requested, domain.RequestedItem{
			ID:       id,
			Name:     v.Name,
			Type:     "venue",
			Status:   domain.RequestedStatus,
			Email:    v.Email,
			Link:     v.Link,
			Location: v.Location,
		})
		out.Venue = nil
		out.IsRequestOnly = true
		out.Notes = appendVenueNotes(slot.Notes, v)
		processed = append(processed, out)
	}
	return processed, requested
}

func appendVenueNotes(notes string, v *domain.VenueRef) string {
	lines := []string{"Requested venue: " + v.Name}
	if v.Email != "" {
		lines = append(lines, "Email: "+v.Email)
	}
	if v.Link != "" {
		lines = append(lines, "Link: "+v.Link)
	}
	if v.Location != "" {
		lines = append(lines, "Location: "+v.Location)
	}
	extra := strings.Join(lines, "\n")
	if notes == "" {
		return extra
	}
	return notes + "\n" + extra
}
