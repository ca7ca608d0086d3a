package booking

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the operational lifecycle:
// scheduled -> confirmed -> in_progress -> completed, with
// cancelled and no_show as side exits before the visit starts.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusInProgress || next == StatusCancelled || next == StatusNoShow
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// CountsTowardOccupancy reports whether a booking in this status still
// holds its time window against slots and other bookings.
func (s Status) CountsTowardOccupancy() bool {
	return s != StatusCancelled
}

type ServiceType string

const (
	ServiceColdPlunge    ServiceType = "cold_plunge"
	ServiceInfraredSauna ServiceType = "infrared_sauna"
	ServiceCombo         ServiceType = "combo"
)

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceColdPlunge, ServiceInfraredSauna, ServiceCombo:
		return true
	default:
		return false
	}
}

func (t ServiceType) String() string {
	return string(t)
}
