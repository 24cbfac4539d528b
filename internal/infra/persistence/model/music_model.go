package model

import "time"

// MusicModel mirrors the 'musics' table. AuthorID references artists.id.
type MusicModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(150);not null"`
	Genre     string `gorm:"type:varchar(100);not null"`
	Album     string `gorm:"type:varchar(150);not null"`
	AuthorID  uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Listenings []ListeningModel `gorm:"foreignKey:MusicID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MusicModel) TableName() string {
	return "musics"
}

// ListeningModel mirrors the 'user_musics' join table.
type ListeningModel struct {
	UserID     uint      `gorm:"primaryKey;autoIncrement:false"`
	MusicID    uint      `gorm:"primaryKey;autoIncrement:false;index"`
	ListenedAt time.Time `gorm:"not null;autoCreateTime"`

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Music *MusicModel `gorm:"foreignKey:MusicID"`
}

// TableName explicitly sets the table name for GORM.
func (ListeningModel) TableName() string {
	return "user_musics"
}
