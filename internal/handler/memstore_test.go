package handler_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"
)

// memStore はHTTPテスト用のインメモリ実装（Txは1本のロックで直列化）
type memStore struct {
	mu sync.Mutex

	nextID    int64
	users     map[int64]model.User
	products  map[int64]model.Product
	cartItems map[int64]model.CartItem
	wishItems map[int64]model.WishlistItem
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[int64]model.User{},
		products:  map[int64]model.Product{},
		cartItems: map[int64]model.CartItem{},
		wishItems: map[int64]model.WishlistItem{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (s *memStore) Users() repo.UserRepository                 { return memUsers{s} }
func (s *memStore) Products() repo.ProductRepository           { return memProducts{s} }
func (s *memStore) CartItems() repo.CartItemRepository         { return memCart{s} }
func (s *memStore) WishlistItems() repo.WishlistItemRepository { return memWish{s} }

// =====================
// users
// =====================

type memUsers struct{ s *memStore }

func (r memUsers) Create(ctx context.Context, u *model.User) error {
	for _, x := range r.s.users {
		if x.Email == u.Email || x.Username == u.Username {
			return repo.ErrDuplicate
		}
	}
	u.ID = r.s.id()
	r.s.users[u.ID] = *u
	return nil
}

func (r memUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, x := range r.s.users {
		if x.Email == email {
			u := x
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r memUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, x := range r.s.users {
		if x.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) LockByID(ctx context.Context, userID int64) error {
	if _, ok := r.s.users[userID]; !ok {
		return repo.ErrNotFound
	}
	return nil
}

func (r memUsers) Delete(ctx context.Context, userID int64) error {
	if _, ok := r.s.users[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.users, userID)
	return nil
}

// =====================
// products
// =====================

type memProducts struct{ s *memStore }

func (r memProducts) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	out := make([]model.Product, 0)
	for _, p := range r.s.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Description+" "+p.Code), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memProducts) ListPage(ctx context.Context, q repo.ProductPageQuery) ([]model.Product, int64, error) {
	all, _ := r.List(ctx, q.Filter)
	from := q.Page * q.Size
	if from > len(all) {
		from = len(all)
	}
	to := from + q.Size
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], int64(len(all)), nil
}

func (r memProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r memProducts) ExistsByCode(ctx context.Context, code string) (bool, error) {
	for _, p := range r.s.products {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r memProducts) Create(ctx context.Context, p *model.Product) error {
	p.ID = r.s.id()
	r.s.products[p.ID] = *p
	return nil
}

func (r memProducts) Update(ctx context.Context, p *model.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return repo.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r memProducts) Delete(ctx context.Context, id int64) error {
	if _, ok := r.s.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// =====================
// cart
// =====================

type memCart struct{ s *memStore }

func (r memCart) withProduct(it model.CartItem) model.CartItem {
	it.Product = r.s.products[it.ProductID]
	return it
}

func (r memCart) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	out := make([]model.CartItem, 0)
	for _, it := range r.s.cartItems {
		if it.UserID == userID {
			out = append(out, r.withProduct(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memCart) FindByID(ctx context.Context, id int64) (model.CartItem, error) {
	it, ok := r.s.cartItems[id]
	if !ok {
		return model.CartItem{}, repo.ErrNotFound
	}
	return r.withProduct(it), nil
}

func (r memCart) FindByUserAndProduct(ctx context.Context, userID, productID int64) (model.CartItem, error) {
	for _, it := range r.s.cartItems {
		if it.UserID == userID && it.ProductID == productID {
			return r.withProduct(it), nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}

func (r memCart) Create(ctx context.Context, it *model.CartItem) error {
	it.ID = r.s.id()
	r.s.cartItems[it.ID] = *it
	return nil
}

func (r memCart) UpdateQuantity(ctx context.Context, id int64, qty int) error {
	it, ok := r.s.cartItems[id]
	if !ok {
		return repo.ErrNotFound
	}
	it.Quantity = qty
	r.s.cartItems[id] = it
	return nil
}

func (r memCart) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := r.s.cartItems[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.cartItems, id)
	return nil
}

func (r memCart) DeleteByUserID(ctx context.Context, userID int64) error {
	for id, it := range r.s.cartItems {
		if it.UserID == userID {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}

func (r memCart) DeleteByProductID(ctx context.Context, productID int64) error {
	for id, it := range r.s.cartItems {
		if it.ProductID == productID {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}

// =====================
// wishlist
// =====================

type memWish struct{ s *memStore }

func (r memWish) withProduct(it model.WishlistItem) model.WishlistItem {
	it.Product = r.s.products[it.ProductID]
	return it
}

func (r memWish) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	out := make([]model.WishlistItem, 0)
	for _, it := range r.s.wishItems {
		if it.UserID == userID {
			out = append(out, r.withProduct(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memWish) FindByID(ctx context.Context, id int64) (model.WishlistItem, error) {
	it, ok := r.s.wishItems[id]
	if !ok {
		return model.WishlistItem{}, repo.ErrNotFound
	}
	return r.withProduct(it), nil
}

func (r memWish) FindByUserAndProduct(ctx context.Context, userID, productID int64) (model.WishlistItem, error) {
	for _, it := range r.s.wishItems {
		if it.UserID == userID && it.ProductID == productID {
			return r.withProduct(it), nil
		}
	}
	return model.WishlistItem{}, repo.ErrNotFound
}

func (r memWish) Create(ctx context.Context, it *model.WishlistItem) error {
	it.ID = r.s.id()
	r.s.wishItems[it.ID] = *it
	return nil
}

func (r memWish) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := r.s.wishItems[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.wishItems, id)
	return nil
}

func (r memWish) DeleteByUserID(ctx context.Context, userID int64) error {
	for id, it := range r.s.wishItems {
		if it.UserID == userID {
			delete(r.s.wishItems, id)
		}
	}
	return nil
}

func (r memWish) DeleteByProductID(ctx context.Context, productID int64) error {
	for id, it := range r.s.wishItems {
		if it.ProductID == productID {
			delete(r.s.wishItems, id)
		}
	}
	return nil
}
