package repository

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

// RecommendationSortBy orders a recommendation listing.
type RecommendationSortBy string

const (
	RecommendationSortNewest RecommendationSortBy = "newest"
	RecommendationSortOldest RecommendationSortBy = "oldest"
	RecommendationSortBest   RecommendationSortBy = "best"
)

type RecommendationRepository interface {
	Create(ctx context.Context, data *entity.Recommendation) error
	GetByUserID(ctx context.Context, userID string, sortBy RecommendationSortBy) ([]entity.Recommendation, error)
	GetByUserIDAndDraw(ctx context.Context, userID string, drawNumber int) ([]entity.Recommendation, error)
	GetUncheckedByUserID(ctx context.Context, userID string) ([]entity.Recommendation, error)
	UpdatePrizeStatus(ctx context.Context, id, status string) error
	DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error)
}

type recommendationRepository struct{}

func NewRecommendationRepository() *recommendationRepository {
	return &recommendationRepository{}
}

func (r *recommendationRepository) Create(ctx context.Context, data *entity.Recommendation) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *recommendationRepository) GetByUserID(
	ctx context.Context, userID string, sortBy RecommendationSortBy,
) ([]entity.Recommendation, error) {
	order := "created_at DESC"
	switch sortBy {
	case RecommendationSortOldest:
		order = "created_at ASC"
	case RecommendationSortBest:
		// The tier strings do not sort naturally; rank winning statuses
		// first, then recency.
		order = `CASE prize_status
			WHEN '1st' THEN 0 WHEN '2nd' THEN 1 WHEN '3rd' THEN 2
			WHEN '4th' THEN 3 WHEN '5th' THEN 4
			WHEN 'no-win' THEN 5 ELSE 6 END, created_at DESC`
	}

	var records []entity.Recommendation
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order(order).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *recommendationRepository) GetByUserIDAndDraw(
	ctx context.Context, userID string, drawNumber int,
) ([]entity.Recommendation, error) {
	var records []entity.Recommendation
	err := xcontext.DB(ctx).
		Where("user_id=? AND draw_number=?", userID, drawNumber).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *recommendationRepository) GetUncheckedByUserID(
	ctx context.Context, userID string,
) ([]entity.Recommendation, error) {
	var records []entity.Recommendation
	err := xcontext.DB(ctx).
		Where("user_id=? AND draw_number IS NOT NULL AND prize_status=?",
			userID, entity.PrizeStatusUnconfirmed).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *recommendationRepository) UpdatePrizeStatus(ctx context.Context, id, status string) error {
	return xcontext.DB(ctx).Model(&entity.Recommendation{}).
		Where("id=?", id).
		Update("prize_status", status).Error
}

func (r *recommendationRepository) DeleteByIDs(
	ctx context.Context, userID string, ids []string,
) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx := xcontext.DB(ctx).
		Where("user_id=? AND id IN (?)", userID, ids).
		Delete(&entity.Recommendation{})

	return tx.RowsAffected, tx.Error
}
