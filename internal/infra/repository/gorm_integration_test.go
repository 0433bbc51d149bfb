package repository_test

import (
	"context"
	"os"
	"testing"

	"producttrial/internal/domain/model"
	"producttrial/internal/infra/db"
	infraRepo "producttrial/internal/infra/repository"
	repo "producttrial/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TEST_DATABASE_URL があるときだけ実DBで動かす
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := db.Connect(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, gdb.Exec("TRUNCATE cart_items, wishlist_items, products, users RESTART IDENTITY CASCADE").Error)

	t.Cleanup(func() {
		sqlDB, _ := gdb.DB()
		_ = sqlDB.Close()
	})
	return gdb
}

func seed(t *testing.T, gdb *gorm.DB) (model.User, model.Product) {
	t.Helper()
	ctx := context.Background()

	u := model.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h"}
	require.NoError(t, infraRepo.NewUserGormRepository(gdb).Create(ctx, &u))

	p := model.Product{
		Code: "P1", Name: "Bamboo Watch", Description: "Wooden watch", Category: "Accessories",
		Price: decimal.RequireFromString("65.00"), Quantity: 10, InventoryStatus: model.InventoryInStock,
		CreatedAt: 1000, UpdatedAt: 1000,
	}
	require.NoError(t, infraRepo.NewProductGormRepository(gdb).Create(ctx, &p))
	return u, p
}

func TestGorm_UserDuplicateEmail(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	seed(t, gdb)

	err := infraRepo.NewUserGormRepository(gdb).Create(ctx, &model.User{Username: "other", Email: "alice@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)
}

func TestGorm_CartItemUniquePerUserProduct(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	u, p := seed(t, gdb)

	items := infraRepo.NewCartItemGormRepository(gdb)
	require.NoError(t, items.Create(ctx, &model.CartItem{UserID: u.ID, ProductID: p.ID, Quantity: 1}))

	err := items.Create(ctx, &model.CartItem{UserID: u.ID, ProductID: p.ID, Quantity: 2})
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	list, err := items.ListByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "P1", list[0].Product.Code)
}

func TestGorm_DeleteUserCascades(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	u, p := seed(t, gdb)

	require.NoError(t, infraRepo.NewCartItemGormRepository(gdb).Create(ctx, &model.CartItem{UserID: u.ID, ProductID: p.ID, Quantity: 1}))
	require.NoError(t, infraRepo.NewWishlistItemGormRepository(gdb).Create(ctx, &model.WishlistItem{UserID: u.ID, ProductID: p.ID}))

	require.NoError(t, infraRepo.NewUserGormRepository(gdb).Delete(ctx, u.ID))

	var carts, wishes int64
	gdb.Model(&model.CartItem{}).Count(&carts)
	gdb.Model(&model.WishlistItem{}).Count(&wishes)
	assert.Zero(t, carts)
	assert.Zero(t, wishes)
}

func TestGorm_ProductListFilters(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	seed(t, gdb)

	products := infraRepo.NewProductGormRepository(gdb)
	require.NoError(t, products.Create(ctx, &model.Product{
		Code: "F-230", Name: "Yoga Mat", Category: "Fitness",
		Price: decimal.RequireFromString("20"), InventoryStatus: model.InventoryLowStock,
	}))

	got, err := products.List(ctx, repo.ProductFilter{Category: "fitness"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "F-230", got[0].Code)

	got, err = products.List(ctx, repo.ProductFilter{Search: "WOODEN"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].Code)

	page, total, err := products.ListPage(ctx, repo.ProductPageQuery{Page: 0, Size: 1, SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, "Bamboo Watch", page[0].Name)
}

func TestGorm_TxRollback(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()
	u, p := seed(t, gdb)

	txm := infraRepo.NewTxManagerGorm(gdb)
	err := txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().LockByID(ctx, u.ID); err != nil {
			return err
		}
		if err := r.CartItems().Create(ctx, &model.CartItem{UserID: u.ID, ProductID: p.ID, Quantity: 1}); err != nil {
			return err
		}
		return repo.ErrNotFound
	})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	var count int64
	gdb.Model(&model.CartItem{}).Count(&count)
	assert.Zero(t, count)
}
