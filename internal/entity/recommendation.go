package entity

import "database/sql"

type Recommendation struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	// DrawNumber is null for freely generated bundles; it is set when the
	// recommendation derives from a scanned ticket.
	DrawNumber   sql.NullInt64
	Combinations Array[Combination]
	PrizeStatus  string `gorm:"default:unconfirmed"`
}
