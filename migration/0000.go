package migration

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

// migrate0000 will create the database with the first version: users,
// their tokens, and stored bundles.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.RefreshToken{},
		&entity.Recommendation{},
		&entity.Purchase{},
		&entity.Migration{},
	)
}
