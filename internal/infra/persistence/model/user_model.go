package model

import "time"

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Photo        *string `gorm:"type:text"`
	PasswordHash string  `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string  `gorm:"type:varchar(16);not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Listenings []ListeningModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
