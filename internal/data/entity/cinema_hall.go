package entity

type CinemaHall struct {
	BaseSimple
	Name       string `db:"name"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

// Capacity is derived, never stored.
func (h *CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}
