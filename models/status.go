package models

// Status is shared by leagues and game schedules.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCompleted Status = "completed"
	StatusScheduled Status = "scheduled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusCompleted, StatusScheduled:
		return true
	}
	return false
}
