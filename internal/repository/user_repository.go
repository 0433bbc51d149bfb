package repository

import (
	"context"

	"producttrial/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（email/username重複は ErrDuplicate）
	Create(ctx context.Context, user *model.User) error
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// 行ロック（SELECT ... FOR UPDATE）。同一ユーザーの書き込みを直列化する
	LockByID(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID int64) error
}
