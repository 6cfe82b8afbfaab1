package entity

type Purchase struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	DrawNumber   int `gorm:"not null;index"`
	Combinations Array[Combination]
	PrizeStatus  string `gorm:"default:unconfirmed"`
}
