package models

import "time"

// Movie is a catalog entry served by the movies route-group.
type Movie struct {
	// ID is a server-assigned UUID. It is ignored on create and update.
	ID string `json:"id"`

	Title    string   `json:"title"`
	Director string   `json:"director,omitempty"`
	Year     int      `json:"year,omitempty"`
	Genres   []string `json:"genres,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
