package model

import "time"

// Metadata holds the bookkeeping columns shared by the rooms, customers and bookings tables.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
}
