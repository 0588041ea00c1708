package equipment

import (
	"time"
)

// Equipment is a snapshot of one physical station as held by the
// external store. The store owns the record; the app never mutates it
// outside the booking transaction.
type Equipment struct {
	ID            string
	Name          string
	Category      string
	IsAvailable   bool
	CurrentUserID *string
	LastUpdated   time.Time
}

// HeldBy returns the user currently holding the item, if any.
func (e Equipment) HeldBy() (string, bool) {
	if e.IsAvailable || e.CurrentUserID == nil {
		return "", false
	}
	return *e.CurrentUserID, true
}

// Consistent checks the availability invariant: an item is unavailable
// iff some booking holds it.
func (e Equipment) Consistent() bool {
	if e.IsAvailable {
		return e.CurrentUserID == nil || *e.CurrentUserID == ""
	}
	return e.CurrentUserID != nil && *e.CurrentUserID != ""
}
