package booking

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status still holds its
// equipment.
func (s Status) IsActive() bool {
	return s == StatusUpcoming || s == StatusActive
}

// ActiveStatuses is the store-filter form of the active set.
func ActiveStatuses() []string {
	return []string{string(StatusUpcoming), string(StatusActive)}
}
