package response

import (
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
)

type TicketResponse struct {
	ID             string    `json:"id"`
	Row            int       `json:"row"`
	Seat           int       `json:"seat"`
	MovieSessionID string    `json:"movie_session_id"`
	ShowTime       time.Time `json:"show_time"`
	MovieTitle     string    `json:"movie_title"`
	CinemaHallName string    `json:"cinema_hall_name"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func TicketToResponse(t *repository.TicketDetail) TicketResponse {
	return TicketResponse{
		ID:             t.Ticket.ID.String(),
		Row:            t.Ticket.Row,
		Seat:           t.Ticket.Seat,
		MovieSessionID: t.Ticket.MovieSessionID.String(),
		ShowTime:       t.ShowTime,
		MovieTitle:     t.MovieTitle,
		CinemaHallName: t.HallName,
	}
}

func OrderToResponse(order *entity.Order, tickets []*repository.TicketDetail) OrderResponse {
	ticketResponses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		ticketResponses[i] = TicketToResponse(t)
	}

	return OrderResponse{
		ID:        order.ID.String(),
		CreatedAt: order.CreatedAt,
		Tickets:   ticketResponses,
	}
}
