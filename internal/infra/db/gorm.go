package db

import (
	"context"
	"fmt"

	"producttrial/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// dsn は config.Config.DSN()（DATABASE_URL 優先）。
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	lvl := logger.Warn
	if debug {
		lvl = logger.Info
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return gdb, nil
}

// Migrate は4テーブルを作成・更新する。
// cart_items/wishlist_items は users/products への FK（ON DELETE CASCADE）を持つ。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.WishlistItem{},
	)
}

// Ping は /healthz 用
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
