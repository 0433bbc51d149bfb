package usecase

import (
	"context"
	"errors"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// 追加は数量を加算、数量変更は置き換え。
type CartUsecase struct {
	txm repo.TransactionManager
}

func NewCartUsecase(txm repo.TransactionManager) *CartUsecase {
	return &CartUsecase{txm: txm}
}

type AddCartInput struct {
	ProductID int64
	Quantity  int
}

func validateQuantity(qty int) error {
	if qty < 1 {
		return InvalidField("quantity", "quantity must be at least 1")
	}
	return nil
}

// List はユーザーのカート明細
func (u *CartUsecase) List(ctx context.Context, email string) ([]CartItemView, error) {
	out := make([]CartItemView, 0)

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := resolveUser(ctx, r.Users(), email)
		if err != nil {
			return err
		}

		items, err := r.CartItems().ListByUserID(ctx, user.ID)
		if err != nil {
			return Unexpected(err)
		}
		for _, it := range items {
			out = append(out, toCartItemView(it))
		}
		return nil
	})
	if err != nil {
		return nil, Unexpected(err)
	}
	return out, nil
}

// Add はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) Add(ctx context.Context, email string, in AddCartInput) (CartItemView, error) {
	if err := validateQuantity(in.Quantity); err != nil {
		return CartItemView{}, err
	}

	var out CartItemView
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := resolveUser(ctx, r.Users(), email)
		if err != nil {
			return err
		}

		// 同一ユーザーの追加を直列化
		if err := r.Users().LockByID(ctx, user.ID); err != nil {
			return notFoundOr(err, "User", user.ID)
		}

		product, err := resolveProduct(ctx, r.Products(), in.ProductID)
		if err != nil {
			return err
		}

		item, err := r.CartItems().FindByUserAndProduct(ctx, user.ID, product.ID)
		switch {
		case err == nil:
			// 既存ありだったら数量を増やす
			newQty := item.Quantity + in.Quantity
			if err := r.CartItems().UpdateQuantity(ctx, item.ID, newQty); err != nil {
				return notFoundOr(err, "CartItem", item.ID)
			}
			item.Quantity = newQty

		case errors.Is(err, repo.ErrNotFound):
			//無い場合は新規作成
			item = model.CartItem{
				UserID:    user.ID,
				ProductID: product.ID,
				Quantity:  in.Quantity,
			}
			if err := r.CartItems().Create(ctx, &item); err != nil {
				if errors.Is(err, repo.ErrDuplicate) {
					return Duplicate("CartItem", "productId", product.ID)
				}
				return Unexpected(err)
			}

		default:
			return Unexpected(err)
		}

		item.Product = product
		out = toCartItemView(item)
		return nil
	})
	if err != nil {
		return CartItemView{}, Unexpected(err)
	}
	return out, nil
}

// UpdateQuantity は数量を置き換える（所有チェックあり）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, email string, cartItemID int64, quantity int) (CartItemView, error) {
	if err := validateQuantity(quantity); err != nil {
		return CartItemView{}, err
	}

	var out CartItemView
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := u.ownedItem(ctx, r, email, cartItemID)
		if err != nil {
			return err
		}

		if err := r.CartItems().UpdateQuantity(ctx, item.ID, quantity); err != nil {
			return notFoundOr(err, "CartItem", item.ID)
		}
		item.Quantity = quantity

		out = toCartItemView(item)
		return nil
	})
	if err != nil {
		return CartItemView{}, Unexpected(err)
	}
	return out, nil
}

// 明細削除
func (u *CartUsecase) Remove(ctx context.Context, email string, cartItemID int64) error {
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := u.ownedItem(ctx, r, email, cartItemID)
		if err != nil {
			return err
		}
		if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
			return notFoundOr(err, "CartItem", item.ID)
		}
		return nil
	})
	if err != nil {
		return Unexpected(err)
	}
	return nil
}

// Clear はカートを空にする。空でもエラーにしない
func (u *CartUsecase) Clear(ctx context.Context, email string) error {
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := resolveUser(ctx, r.Users(), email)
		if err != nil {
			return err
		}
		if err := r.CartItems().DeleteByUserID(ctx, user.ID); err != nil {
			return Unexpected(err)
		}
		return nil
	})
	if err != nil {
		return Unexpected(err)
	}
	return nil
}

// user解決 -> 明細取得 -> 持ち主チェック
func (u *CartUsecase) ownedItem(ctx context.Context, r repo.TxRepos, email string, cartItemID int64) (model.CartItem, error) {
	user, err := resolveUser(ctx, r.Users(), email)
	if err != nil {
		return model.CartItem{}, err
	}

	item, err := r.CartItems().FindByID(ctx, cartItemID)
	if err != nil {
		return model.CartItem{}, notFoundOr(err, "CartItem", cartItemID)
	}

	if err := checkOwner("CartItem", item.ID, item.UserID, user.ID); err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}
