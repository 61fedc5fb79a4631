package models

// Slot is a half-open interval [Start, End) inside a ground's operating
// window. Slots are recomputed on demand and never persisted.
type Slot struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Label renders the slot the way it is stored on booking records.
func (s Slot) Label() string {
	return s.Start + " - " + s.End
}
