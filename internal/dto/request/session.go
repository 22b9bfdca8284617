package request

type MovieSessionRequest struct {
	MovieID      string `json:"movie" validate:"required,uuid4"`
	CinemaHallID string `json:"cinema_hall" validate:"required,uuid4"`
	ShowTime     string `json:"show_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// SessionFilterRequest carries the raw query parameters of the session
// listing. Both filters are optional; parsing happens in the service so an
// unparseable date can degrade to an empty result instead of an error.
type SessionFilterRequest struct {
	Date    string
	MovieID string
}
