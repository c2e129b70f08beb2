package response

import (
	"turf-booking/internal/data/entity"
	"turf-booking/pkg/utils"
)

type TimeSlotResponse struct {
	ID            string `json:"id"`
	TurfID        string `json:"turf_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	IsAvailable   bool   `json:"is_available"`
	DaysAvailable []int  `json:"days_available"`
}

type BookableSlotResponse struct {
	SlotID    string  `json:"slot_id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
}

// Helper converters
func TimeSlotToResponse(slot *entity.TimeSlot) TimeSlotResponse {
	days := make([]int, 0, len(slot.DaysAvailable))
	for _, d := range slot.DaysAvailable {
		days = append(days, int(d))
	}

	return TimeSlotResponse{
		ID:            slot.ID.String(),
		TurfID:        slot.TurfID.String(),
		StartTime:     utils.FormatClock(slot.StartMinute),
		EndTime:       utils.FormatClock(slot.EndMinute),
		IsAvailable:   slot.IsAvailable,
		DaysAvailable: days,
	}
}
