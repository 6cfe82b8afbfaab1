package migration

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

// migrate0001 adds the draw result table backing the result cache.
func migrate0001(ctx context.Context) error {
	return xcontext.DB(ctx).Migrator().CreateTable(&entity.DrawResult{})
}
