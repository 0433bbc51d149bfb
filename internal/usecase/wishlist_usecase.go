package usecase

import (
	"context"
	"errors"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"
)

// WishlistUsecase は /wishlist の業務ロジック。
// 追加は冪等（既存があればそのまま返す）。
type WishlistUsecase struct {
	txm repo.TransactionManager
}

func NewWishlistUsecase(txm repo.TransactionManager) *WishlistUsecase {
	return &WishlistUsecase{txm: txm}
}

func (u *WishlistUsecase) List(ctx context.Context, email string) ([]WishlistItemView, error) {
	out := make([]WishlistItemView, 0)

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := resolveUser(ctx, r.Users(), email)
		if err != nil {
			return err
		}

		items, err := r.WishlistItems().ListByUserID(ctx, user.ID)
		if err != nil {
			return Unexpected(err)
		}
		for _, it := range items {
			out = append(out, toWishlistItemView(it))
		}
		return nil
	})
	if err != nil {
		return nil, Unexpected(err)
	}
	return out, nil
}

func (u *WishlistUsecase) Add(ctx context.Context, email string, productID int64) (WishlistItemView, error) {
	var out WishlistItemView

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := resolveUser(ctx, r.Users(), email)
		if err != nil {
			return err
		}

		if err := r.Users().LockByID(ctx, user.ID); err != nil {
			return notFoundOr(err, "User", user.ID)
		}

		product, err := resolveProduct(ctx, r.Products(), productID)
		if err != nil {
			return err
		}

		existing, err := r.WishlistItems().FindByUserAndProduct(ctx, user.ID, product.ID)
		if err == nil {
			existing.Product = product
			out = toWishlistItemView(existing)
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return Unexpected(err)
		}

		item := model.WishlistItem{UserID: user.ID, ProductID: product.ID}
		if err := r.WishlistItems().Create(ctx, &item); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return Duplicate("WishlistItem", "productId", product.ID)
			}
			return Unexpected(err)
		}

		item.Product = product
		out = toWishlistItemView(item)
		return nil
	})
	if err != nil {
		return WishlistItemView{}, Unexpected(err)
	}
	return out, nil
}

func (u *WishlistUsecase) Remove(ctx context.Context, email string, wishlistItemID int64) error {
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := resolveUser(ctx, r.Users(), email)
		if err != nil {
			return err
		}

		item, err := r.WishlistItems().FindByID(ctx, wishlistItemID)
		if err != nil {
			return notFoundOr(err, "WishlistItem", wishlistItemID)
		}
		if err := checkOwner("WishlistItem", item.ID, item.UserID, user.ID); err != nil {
			return err
		}

		if err := r.WishlistItems().DeleteByID(ctx, item.ID); err != nil {
			return notFoundOr(err, "WishlistItem", item.ID)
		}
		return nil
	})
	if err != nil {
		return Unexpected(err)
	}
	return nil
}
