package repository

import (
	"context"

	repo "producttrial/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users         repo.UserRepository
	products      repo.ProductRepository
	cartItems     repo.CartItemRepository
	wishlistItems repo.WishlistItemRepository
}

func (r *txReposGorm) Users() repo.UserRepository                 { return r.users }
func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) CartItems() repo.CartItemRepository         { return r.cartItems }
func (r *txReposGorm) WishlistItems() repo.WishlistItemRepository { return r.wishlistItems }

// READ COMMITTED（Postgresの既定）。直列化が必要な箇所は行ロックを使う
type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:         NewUserGormRepository(tx),
			products:      NewProductGormRepository(tx),
			cartItems:     NewCartItemGormRepository(tx),
			wishlistItems: NewWishlistItemGormRepository(tx),
		}
		return fn(r)
	})
}
