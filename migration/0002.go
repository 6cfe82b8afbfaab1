package migration

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

// migrate0002 backfills the prize status of records written before the
// prize checker existed.
func migrate0002(ctx context.Context) error {
	err := xcontext.DB(ctx).Model(&entity.Purchase{}).
		Where("prize_status IS NULL OR prize_status = ''").
		Update("prize_status", entity.PrizeStatusUnconfirmed).Error
	if err != nil {
		return err
	}

	return xcontext.DB(ctx).Model(&entity.Recommendation{}).
		Where("prize_status IS NULL OR prize_status = ''").
		Update("prize_status", entity.PrizeStatusUnconfirmed).Error
}
