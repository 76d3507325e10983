package response

import (
	"campus-events/internal/data/entity"
)

type EventResponse struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	EventDate string `json:"event_date"`
	EventTime string `json:"event_time"`
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:        event.ID.String(),
		Slug:      event.Slug,
		Name:      event.Name,
		Location:  event.Location,
		EventDate: event.EventDate,
		EventTime: event.EventTime,
	}
}
