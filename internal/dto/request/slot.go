package request

type TimeSlotRequest struct {
	StartTime     string `json:"start_time" validate:"required,hhmm"`
	EndTime       string `json:"end_time" validate:"required,hhmm"`
	DaysAvailable []int  `json:"days_available" validate:"required,min=1,dive,weekday"`
}

type SlotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
