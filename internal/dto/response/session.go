package response

import (
	"time"

	"cinema-api/internal/data/repository"
)

// MovieSessionResponse is the annotated list projection.
type MovieSessionResponse struct {
	ID                 string    `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieID            string    `json:"movie_id"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int       `json:"cinema_hall_capacity"`
	TicketsAvailable   int       `json:"tickets_available"`
}

// TakenSeatResponse marks a booked place within the session's hall.
type TakenSeatResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// MovieSessionDetailResponse nests the movie and hall and lists the seats
// that are already booked.
type MovieSessionDetailResponse struct {
	ID               string              `json:"id"`
	ShowTime         time.Time           `json:"show_time"`
	Movie            MovieDetailResponse `json:"movie"`
	CinemaHall       CinemaHallResponse  `json:"cinema_hall"`
	TakenSeats       []TakenSeatResponse `json:"taken_seats"`
	TicketsAvailable int                 `json:"tickets_available"`
}

func SessionToResponse(s *repository.SessionWithAvailability) MovieSessionResponse {
	return MovieSessionResponse{
		ID:                 s.Session.ID.String(),
		ShowTime:           s.Session.ShowTime,
		MovieID:            s.Session.MovieID.String(),
		MovieTitle:         s.MovieTitle,
		CinemaHallName:     s.HallName,
		CinemaHallCapacity: s.HallRows * s.HallSeats,
		TicketsAvailable:   s.TicketsAvailable,
	}
}
