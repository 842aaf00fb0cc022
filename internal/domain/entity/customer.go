package entity

import "time"

// Customer representa un cliente facturable.
type Customer struct {
	ID        string
	Name      string
	Email     string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
