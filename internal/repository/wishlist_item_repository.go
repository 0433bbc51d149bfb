package repository

import (
	"context"

	"producttrial/internal/domain/model"
)

type WishlistItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	FindByID(ctx context.Context, wishlistItemID int64) (model.WishlistItem, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.WishlistItem, error)
	Create(ctx context.Context, item *model.WishlistItem) error
	DeleteByID(ctx context.Context, wishlistItemID int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteByProductID(ctx context.Context, productID int64) error
}
