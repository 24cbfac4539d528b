package entity

import "time"

// Artist is a performer that authors music tracks.
type Artist struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Stream    int       `json:"stream"` // accumulated stream count
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
