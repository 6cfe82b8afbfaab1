package entity

import "time"

// DrawResult is an official published draw. Results never change once
// written.
type DrawResult struct {
	DrawNumber     int `gorm:"primarykey"`
	WinningNumbers Array[int]
	BonusNumber    int
	CreatedAt      time.Time
}
