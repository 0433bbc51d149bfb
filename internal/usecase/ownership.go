package usecase

import (
	"context"
	"errors"
	"fmt"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"
)

// emailからユーザーを解決（無ければNotFound）
func resolveUser(ctx context.Context, users repo.UserRepository, email string) (*model.User, error) {
	u, err := users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NotFound("User", "email", email)
	}
	if err != nil {
		return nil, Unexpected(err)
	}
	return u, nil
}

func resolveProduct(ctx context.Context, products repo.ProductRepository, productID int64) (model.Product, error) {
	p, err := products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NotFound("Product", "id", productID)
	}
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	return p, nil
}

// 明細の持ち主チェック。存在はするので NotFound ではなく Unauthorized
func checkOwner(resource string, itemID, ownerID, userID int64) error {
	if ownerID != userID {
		return Unauthorized(fmt.Sprintf("You are not authorized to access %s with id: '%d'", resource, itemID))
	}
	return nil
}

// repositoryのエラーをusecaseのエラーへ
func notFoundOr(err error, resource string, id int64) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NotFound(resource, "id", id)
	}
	return Unexpected(err)
}
