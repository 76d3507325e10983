package request

type CreateEventRequest struct {
	Slug      string `json:"slug" validate:"required,min=3,max=50"`
	Name      string `json:"name" validate:"required,max=150"`
	Location  string `json:"location" validate:"required,max=150"`
	EventDate string `json:"event_date" validate:"required,max=50"`
	EventTime string `json:"event_time" validate:"required,max=50"`
}
