package model

import "time"

// ArtistModel mirrors the 'artists' table.
type ArtistModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(150);not null"`
	Photo     string `gorm:"type:text;not null"`
	Stream    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Musics []MusicModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ArtistModel) TableName() string {
	return "artists"
}
