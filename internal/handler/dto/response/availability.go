package response

import (
	"time"

	"driftwell/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID              uuid.UUID `json:"id"`
	SlotDate        string    `json:"slotDate"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	MaxBookings     int32     `json:"maxBookings"`
	CurrentBookings int32     `json:"currentBookings"`
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:              rm.ID,
		SlotDate:        rm.SlotDate.Format("2006-01-02"),
		StartAt:         rm.StartAt,
		EndAt:           rm.EndAt,
		MaxBookings:     rm.MaxBookings,
		CurrentBookings: rm.CurrentBookings,
	}
}
