package request

type QuoteRequest struct {
	SportID   string `json:"sport_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

type CreateBookingRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	TurfID    string `json:"turf_id" validate:"required,uuid4"`
	SportID   string `json:"sport_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed"`
}
