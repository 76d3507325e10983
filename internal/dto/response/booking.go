package response

import (
	"time"

	"campus-events/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	Reference       string               `json:"reference"`
	UserID          string               `json:"user_id,omitempty"`
	EventSlug       string               `json:"event_slug"`
	EventName       string               `json:"event_name"`
	EventLocation   string               `json:"event_location"`
	EventDate       string               `json:"event_date"`
	EventTime       string               `json:"event_time"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	Email           string               `json:"email"`
	Phone           *string              `json:"phone,omitempty"`
	StudentID       *string              `json:"student_id,omitempty"`
	TicketCount     int                  `json:"ticket_count"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	Status          entity.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID.String(),
		Reference:       booking.Reference,
		EventSlug:       booking.EventSlug,
		EventName:       booking.EventName,
		EventLocation:   booking.EventLocation,
		EventDate:       booking.EventDate,
		EventTime:       booking.EventTime,
		FirstName:       booking.FirstName,
		LastName:        booking.LastName,
		Email:           booking.Email,
		Phone:           booking.Phone,
		StudentID:       booking.StudentID,
		TicketCount:     booking.TicketCount,
		SpecialRequests: booking.SpecialRequests,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
	}

	if booking.UserID != nil {
		resp.UserID = booking.UserID.String()
	}

	return resp
}
