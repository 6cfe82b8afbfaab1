package repository

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
)

type PurchaseRepository interface {
	Create(ctx context.Context, data *entity.Purchase) error
	GetByUserID(ctx context.Context, userID string) ([]entity.Purchase, error)
	GetByUserIDAndDraw(ctx context.Context, userID string, drawNumber int) ([]entity.Purchase, error)
	GetUncheckedByUserID(ctx context.Context, userID string) ([]entity.Purchase, error)
	UpdatePrizeStatus(ctx context.Context, id, status string) error
	DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error)
}

type purchaseRepository struct{}

func NewPurchaseRepository() *purchaseRepository {
	return &purchaseRepository{}
}

func (r *purchaseRepository) Create(ctx context.Context, data *entity.Purchase) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *purchaseRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Purchase, error) {
	var records []entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *purchaseRepository) GetByUserIDAndDraw(
	ctx context.Context, userID string, drawNumber int,
) ([]entity.Purchase, error) {
	var records []entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=? AND draw_number=?", userID, drawNumber).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *purchaseRepository) GetUncheckedByUserID(ctx context.Context, userID string) ([]entity.Purchase, error) {
	var records []entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=? AND prize_status=?", userID, entity.PrizeStatusUnconfirmed).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *purchaseRepository) UpdatePrizeStatus(ctx context.Context, id, status string) error {
	return xcontext.DB(ctx).Model(&entity.Purchase{}).
		Where("id=?", id).
		Update("prize_status", status).Error
}

func (r *purchaseRepository) DeleteByIDs(
	ctx context.Context, userID string, ids []string,
) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx := xcontext.DB(ctx).
		Where("user_id=? AND id IN (?)", userID, ids).
		Delete(&entity.Purchase{})

	return tx.RowsAffected, tx.Error
}
