package repository

import (
	"context"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistItemGormRepository(db *gorm.DB) *WishlistItemGormRepository {
	return &WishlistItemGormRepository{db: db}
}

func (r *WishlistItemGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	items := make([]model.WishlistItem, 0)

	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.WishlistItem{}, err
	}
	return items, nil
}

func (r *WishlistItemGormRepository) FindByID(ctx context.Context, wishlistItemID int64) (model.WishlistItem, error) {
	var item model.WishlistItem

	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", wishlistItemID).
		First(&item).Error
	if err != nil {
		return model.WishlistItem{}, translateError(err)
	}
	return item, nil
}

func (r *WishlistItemGormRepository) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.WishlistItem, error) {
	var item model.WishlistItem

	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return model.WishlistItem{}, translateError(err)
	}
	return item, nil
}

func (r *WishlistItemGormRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(item).Error
	return translateError(err)
}

func (r *WishlistItemGormRepository) DeleteByID(ctx context.Context, wishlistItemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.WishlistItem{}, wishlistItemID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *WishlistItemGormRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.WishlistItem{}).Error
}

func (r *WishlistItemGormRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.WishlistItem{}).Error
}
