package domain

// SlotType classifies what happens during a slot.
type SlotType string

const (
	SlotPerformance SlotType = "performance"
	SlotSetup       SlotType = "setup"
	SlotBreakdown   SlotType = "breakdown"
	SlotBreak       SlotType = "break"
	SlotOther       SlotType = "other"
)

// Valid reports whether t is a known slot type. The empty type is allowed.
func (t SlotType) Valid() bool {
	switch t {
	case "", SlotPerformance, SlotSetup, SlotBreakdown, SlotBreak, SlotOther:
		return true
	}
	return false
}

// VenueRef is the venue of a slot: either an existing catalog venue or, when IsNew
// is set, an ad-hoc description of a venue that is not onboarded yet.
// swagger:model VenueRef
type VenueRef struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
	IsNew       bool   `json:"isNew,omitempty"`
	Email       string `json:"email,omitempty"`
	Link        string `json:"link,omitempty"`
}

// EventSlot is one entry of an event's running order. Field names are persisted
// verbatim inside the events.slots column.
// swagger:model EventSlot
type EventSlot struct {
	ID            string           `json:"id"`
	StartTime     string           `json:"startTime"`
	EndTime       string           `json:"endTime"`
	Title         string           `json:"title,omitempty"`
	Description   string           `json:"description,omitempty"`
	Type          SlotType         `json:"type,omitempty"`
	Venue         *VenueRef        `json:"venue,omitempty"`
	Artists       []SelectedObject `json:"artists,omitempty"`
	Resources     []SelectedObject `json:"resources,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	IsRequestOnly bool             `json:"isRequestOnly"`
}

// Clone returns a copy of the slot that shares no memory with s.
func (s EventSlot) Clone() EventSlot {
	out := s
	if s.Venue != nil {
		v := *s.Venue
		out.Venue = &v
	}
	if s.Artists != nil {
		out.Artists = append([]SelectedObject(nil), s.Artists...)
	}
	if s.Resources != nil {
		out.Resources = append([]SelectedObject(nil), s.Resources...)
	}
	return out
}

// RequestedStatus is the status of every RequestedItem produced at submission time.
const RequestedStatus = "requested"

// RequestedItem is a placeholder for an entity the composer wants but that does not
// exist in the catalog yet.
// swagger:model RequestedItem
type RequestedItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Email    string `json:"email,omitempty"`
	Link     string `json:"link,omitempty"`
	Location string `json:"location,omitempty"`
}
