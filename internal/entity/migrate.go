package entity

import (
	"context"

	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&RefreshToken{},
		&Recommendation{},
		&Purchase{},
		&DrawResult{},
		&Migration{},
	)
}
