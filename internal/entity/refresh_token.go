package entity

import "time"

type RefreshToken struct {
	UserID string
	User   User `gorm:"foreignKey:UserID"`

	// Family is stored hashed. The plain value only ever lives inside the
	// refresh token itself.
	Family     string `gorm:"unique;index,unique"`
	Counter    uint64
	Expiration time.Time
}
