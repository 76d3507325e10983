package entity

// Event is the lookup record behind the booking form's event selection.
// Dates and times are stored as display strings ("October 23, 2025",
// "9:00 AM - 5:00 PM", or "TBD") rather than timestamps.
type Event struct {
	Base
	Slug      string `db:"slug"`
	Name      string `db:"name"`
	Location  string `db:"location"`
	EventDate string `db:"event_date"`
	EventTime string `db:"event_time"`
	IsActive  bool   `db:"is_active"`
}

// Placeholder display fields used when a submission references an
// unknown event selection.
const (
	PlaceholderEventName     = "Selected Event"
	PlaceholderEventLocation = "Event Location"
	PlaceholderEventDate     = "TBD"
	PlaceholderEventTime     = "TBD"
)
