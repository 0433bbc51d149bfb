package auth

import (
	"context"
	"errors"

	"producttrial/internal/repository"
	"producttrial/internal/usecase"

	"github.com/labstack/gommon/log"
)

// 退会。カート・お気に入りの明細も同じTxで削除する
type DeleteAccountUsecase struct {
	txm    repository.TransactionManager
	logger *log.Logger
}

// DI
func NewDeleteAccountUsecase(txm repository.TransactionManager, logger *log.Logger) *DeleteAccountUsecase {
	return &DeleteAccountUsecase{txm: txm, logger: logger}
}

func (u *DeleteAccountUsecase) Execute(ctx context.Context, email string) error {
	var userID int64

	err := u.txm.WithinTx(ctx, func(r repository.TxRepos) error {
		user, err := r.Users().FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrNotFound) {
			return usecase.NotFound("User", "email", email)
		}
		if err != nil {
			return usecase.Unexpected(err)
		}
		userID = user.ID

		if err := r.CartItems().DeleteByUserID(ctx, user.ID); err != nil {
			return usecase.Unexpected(err)
		}
		if err := r.WishlistItems().DeleteByUserID(ctx, user.ID); err != nil {
			return usecase.Unexpected(err)
		}
		if err := r.Users().Delete(ctx, user.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return usecase.NotFound("User", "email", email)
			}
			return usecase.Unexpected(err)
		}
		return nil
	})
	if err != nil {
		return usecase.Unexpected(err)
	}

	u.logger.Infof("user deleted id=%d", userID)
	return nil
}
