package request

type CreateBookingRequest struct {
	EventSelect     string  `json:"event_select" validate:"required,max=50"`
	FirstName       string  `json:"first_name" validate:"required,max=100"`
	LastName        string  `json:"last_name" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	StudentID       *string `json:"student_id,omitempty" validate:"omitempty,max=32"`
	TicketCount     int     `json:"ticket_count" validate:"required,min=1,max=10"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
