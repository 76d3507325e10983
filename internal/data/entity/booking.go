package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// CanTransitionTo reports whether a status change is allowed.
// cancelled and completed are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking keeps the event display fields resolved at submission time,
// so the record stays renderable even if the event is edited later.
type Booking struct {
	Base
	Reference       string        `db:"reference"`
	UserID          *uuid.UUID    `db:"user_id"`
	OwnerKey        string        `db:"owner_key"`
	EventSlug       string        `db:"event_slug"`
	EventName       string        `db:"event_name"`
	EventLocation   string        `db:"event_location"`
	EventDate       string        `db:"event_date"`
	EventTime       string        `db:"event_time"`
	FirstName       string        `db:"first_name"`
	LastName        string        `db:"last_name"`
	Email           string        `db:"email"`
	Phone           *string       `db:"phone"`
	StudentID       *string       `db:"student_id"`
	TicketCount     int           `db:"ticket_count"`
	SpecialRequests *string       `db:"special_requests"`
	Status          BookingStatus `db:"status"`
}
