package domain

import "time"

// University is the institution a user is affiliated with, referenced by name.
type University struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}
