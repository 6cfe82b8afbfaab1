package entity

import "time"

// Migration tracks which versioned migrators have run.
type Migration struct {
	Version   string `gorm:"primarykey"`
	CreatedAt time.Time
}
