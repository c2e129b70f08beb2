package response

import (
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/utils"
)

type QuoteResponse struct {
	SportID      string  `json:"sport_id"`
	Date         string  `json:"date"`
	Weekday      int     `json:"weekday"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerHour float64 `json:"price_per_hour"`
	TotalAmount  float64 `json:"total_amount"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	Reference     string               `json:"reference"`
	UserID        string               `json:"user_id"`
	TurfID        string               `json:"turf_id"`
	SportID       string               `json:"sport_id"`
	TurfName      string               `json:"turf_name,omitempty"`
	SportName     string               `json:"sport_name,omitempty"`
	Date          string               `json:"date"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	TotalAmount   float64              `json:"total_amount"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type CancelBookingResponse struct {
	BookingResponse
	RefundDue bool `json:"refund_due"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		Reference:     booking.Reference,
		UserID:        booking.UserID.String(),
		TurfID:        booking.TurfID.String(),
		SportID:       booking.SportID.String(),
		Date:          booking.Date.Format("2006-01-02"),
		StartTime:     utils.FormatClock(booking.StartMinute),
		EndTime:       utils.FormatClock(booking.EndMinute),
		TotalAmount:   booking.TotalAmount,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingToDetailResponse(booking *entity.Booking, turfName, sportName string) BookingResponse {
	resp := BookingToResponse(booking)
	resp.TurfName = turfName
	resp.SportName = sportName
	return resp
}
