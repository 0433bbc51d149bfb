package mocks

import (
	"context"

	repo "producttrial/internal/repository"

	"github.com/stretchr/testify/mock"
)

// TxRepos は4つのモックを束ねる
type TxRepos struct {
	UserRepo         *UserRepository
	ProductRepo      *ProductRepository
	CartItemRepo     *CartItemRepository
	WishlistItemRepo *WishlistItemRepository
}

func NewTxRepos() *TxRepos {
	return &TxRepos{
		UserRepo:         new(UserRepository),
		ProductRepo:      new(ProductRepository),
		CartItemRepo:     new(CartItemRepository),
		WishlistItemRepo: new(WishlistItemRepository),
	}
}

func (r *TxRepos) Users() repo.UserRepository                 { return r.UserRepo }
func (r *TxRepos) Products() repo.ProductRepository           { return r.ProductRepo }
func (r *TxRepos) CartItems() repo.CartItemRepository         { return r.CartItemRepo }
func (r *TxRepos) WishlistItems() repo.WishlistItemRepository { return r.WishlistItemRepo }

func (r *TxRepos) AssertExpectations(t mock.TestingT) {
	r.UserRepo.AssertExpectations(t)
	r.ProductRepo.AssertExpectations(t)
	r.CartItemRepo.AssertExpectations(t)
	r.WishlistItemRepo.AssertExpectations(t)
}

// TxManager はfnをそのまま実行する。CommitErr でcommit失敗を再現
type TxManager struct {
	Repos     *TxRepos
	CommitErr error
	Calls     int
}

func NewTxManager() *TxManager {
	return &TxManager{Repos: NewTxRepos()}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Calls++
	if err := fn(m.Repos); err != nil {
		return err
	}
	return m.CommitErr
}

var _ repo.TransactionManager = (*TxManager)(nil)
