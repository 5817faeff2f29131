package repository

import (
	"context"

	"comanda-pos/internal/model"

	"gorm.io/gorm"
)

type MovementRepository interface {
	Record(ctx context.Context, movements []model.StockMovement) error
	FindRecent(ctx context.Context, productID string, limit int) ([]model.StockMovement, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) Record(ctx context.Context, movements []model.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&movements).Error
}

// FindRecent lists the newest movements, optionally for a single product
func (r *movementRepo) FindRecent(ctx context.Context, productID string, limit int) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&movements).Error
	return movements, err
}
