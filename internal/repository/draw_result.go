package repository

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type DrawResultRepository interface {
	Upsert(ctx context.Context, data *entity.DrawResult) error
	GetByDrawNumber(ctx context.Context, drawNumber int) (*entity.DrawResult, error)
}

type drawResultRepository struct{}

func NewDrawResultRepository() *drawResultRepository {
	return &drawResultRepository{}
}

func (r *drawResultRepository) Upsert(ctx context.Context, data *entity.DrawResult) error {
	// Results are immutable; a concurrent fetch of the same draw just
	// keeps the first row.
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(data).Error
}

func (r *drawResultRepository) GetByDrawNumber(
	ctx context.Context, drawNumber int,
) (*entity.DrawResult, error) {
	var record entity.DrawResult
	if err := xcontext.DB(ctx).Where("draw_number=?", drawNumber).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}
