package entity

type User struct {
	Base

	KakaoID  int64 `gorm:"unique"`
	Nickname string
}
