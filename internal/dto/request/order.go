package request

type TicketRequest struct {
	MovieSessionID string `json:"movie_session" validate:"required,uuid4"`
	Row            int    `json:"row" validate:"required,min=1"`
	Seat           int    `json:"seat" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
