package entity

import "time"

// Music is a single track of the catalog, authored by one artist.
type Music struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre"`
	Album     string    `json:"album"`
	AuthorID  uint      `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Listening links a user to a track they have listened to.
type Listening struct {
	UserID     uint      `json:"userId"`
	MusicID    uint      `json:"musicId"`
	ListenedAt time.Time `json:"listenedAt"`
}
