package models

// DateLayout is the calendar date format used for events and comments.
const DateLayout = "2006-01-02"

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	ImageURL    string   `json:"image_url"`
	Organizer   string   `json:"organizer"`
	Category    Category `json:"category"`
}

// EventInput is an event without its id, as supplied on create and update.
type EventInput struct {
	Title       string
	Description string
	Date        string
	Location    string
	ImageURL    string
	Organizer   string
	Category    Category
}

func (in EventInput) WithID(id string) Event {
	return Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		Organizer:   in.Organizer,
		Category:    in.Category,
	}
}
