package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Handlers
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrSeatTaken is returned when a ticket insert collides with an existing
// ticket for the same (session, row, seat), either during the in-transaction
// check or at commit time via the unique constraint. Handlers translate this
// into an HTTP 400 response; the request is safe to retry.
var ErrSeatTaken = errors.New("seat already taken")

// ErrDuplicate is returned when a unique column (e.g. genre name, user
// email) already holds the given value.
var ErrDuplicate = errors.New("already exists")

// Postgres error codes checked when mapping pgconn errors to sentinels.
const (
	pgerrUniqueViolation      = "23505"
	pgerrSerializationFailure = "40001"
)
