package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

const (
	maxPageSize     = 100
	defaultSortBy   = "name"
	maxPriceIntPart = 10
)

// 商品の読み取りキャッシュ（失敗してもエラーは返さない）
type ProductCache interface {
	Get(ctx context.Context, id int64) (model.Product, bool)
	Set(ctx context.Context, p model.Product)
	Invalidate(ctx context.Context, id int64)
}

type ProductUsecase struct {
	txm    repo.TransactionManager
	cache  ProductCache
	clock  Clock
	logger *log.Logger
}

// DI
func NewProductUsecase(
	txm repo.TransactionManager,
	cache ProductCache,
	clock Clock,
	logger *log.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		txm:    txm,
		cache:  cache,
		clock:  clock,
		logger: logger,
	}
}

// 作成・更新の入力
type ProductInput struct {
	Code              string
	Name              string
	Description       string
	Image             string
	Category          string
	Price             decimal.Decimal
	Quantity          int
	InternalReference string
	ShellID           *int64
	InventoryStatus   model.InventoryStatus
	Rating            *float64
}

// GET /products の入力。Page と Size が両方あるときだけページング
type ListProductsInput struct {
	Category string
	Search   string
	Page     *int
	Size     *int
	SortBy   string
	SortDir  string
}

// Page が nil なら Items（全件）
type ProductListOutput struct {
	Items []ProductView
	Page  *ProductPage
}

func (in ProductInput) validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Code) == "" {
		fields["code"] = "code is required"
	} else if len(in.Code) > 100 {
		fields["code"] = "code must be at most 100 characters"
	}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	} else if len(in.Name) > 255 {
		fields["name"] = "name must be at most 255 characters"
	}
	if len(in.Description) > 2000 {
		fields["description"] = "description must be at most 2000 characters"
	}
	if strings.TrimSpace(in.Category) == "" {
		fields["category"] = "category is required"
	} else if len(in.Category) > 100 {
		fields["category"] = "category must be at most 100 characters"
	}
	if !in.Price.IsPositive() {
		fields["price"] = "price must be greater than 0"
	} else if !in.Price.Equal(in.Price.Round(2)) || len(in.Price.Truncate(0).String()) > maxPriceIntPart {
		fields["price"] = "price must have at most 10 integer digits and 2 decimals"
	}
	if in.Quantity < 0 {
		fields["quantity"] = "quantity must not be negative"
	}
	if len(in.InternalReference) > 100 {
		fields["internalReference"] = "internalReference must be at most 100 characters"
	}
	if !in.InventoryStatus.Valid() {
		fields["inventoryStatus"] = "inventoryStatus must be one of IN_STOCK, LOW_STOCK, OUT_OF_STOCK"
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		fields["rating"] = "rating must be between 0 and 5"
	}

	if len(fields) > 0 {
		return Validation(fields)
	}
	return nil
}

func (in ProductInput) applyTo(p *model.Product) {
	p.Code = strings.TrimSpace(in.Code)
	p.Name = in.Name
	p.Description = in.Description
	p.Image = in.Image
	p.Category = in.Category
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.InternalReference = in.InternalReference
	p.ShellID = in.ShellID
	p.InventoryStatus = in.InventoryStatus
	p.Rating = in.Rating
}

// エポックミリ秒
func (u *ProductUsecase) nowMillis() int64 {
	return u.clock.Now().UnixMilli()
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	filter := repo.ProductFilter{
		Category: strings.TrimSpace(in.Category),
		Search:   strings.TrimSpace(in.Search),
	}

	// ページングなし
	if in.Page == nil || in.Size == nil {
		var items []model.Product
		err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
			var err error
			items, err = r.Products().List(ctx, filter)
			return err
		})
		if err != nil {
			return ProductListOutput{}, Unexpected(err)
		}
		return ProductListOutput{Items: toProductViews(items)}, nil
	}

	q, err := pageQuery(filter, *in.Page, *in.Size, in.SortBy, in.SortDir)
	if err != nil {
		return ProductListOutput{}, err
	}

	var (
		items []model.Product
		total int64
	)
	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		items, total, err = r.Products().ListPage(ctx, q)
		return err
	})
	if err != nil {
		return ProductListOutput{}, Unexpected(err)
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return ProductListOutput{Page: &ProductPage{
		Content:       toProductViews(items),
		Page:          q.Page,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}}, nil
}

func pageQuery(filter repo.ProductFilter, page, size int, sortBy, sortDir string) (repo.ProductPageQuery, error) {
	fields := map[string]string{}

	if page < 0 {
		fields["page"] = "page must be >= 0"
	}
	if size < 1 || size > maxPageSize {
		fields["size"] = fmt.Sprintf("size must be between 1 and %d", maxPageSize)
	}
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if !repo.IsSortableProductField(sortBy) {
		fields["sortBy"] = "unknown sort field: " + sortBy
	}

	desc := false
	switch strings.ToUpper(sortDir) {
	case "", "ASC":
	case "DESC":
		desc = true
	default:
		fields["sortDir"] = "sortDir must be ASC or DESC"
	}

	if len(fields) > 0 {
		return repo.ProductPageQuery{}, Validation(fields)
	}
	return repo.ProductPageQuery{Filter: filter, Page: page, Size: size, SortBy: sortBy, SortDesc: desc}, nil
}

// GetByID はキャッシュを先に見る
func (u *ProductUsecase) GetByID(ctx context.Context, id int64) (ProductView, error) {
	if p, ok := u.cache.Get(ctx, id); ok {
		return toProductView(p), nil
	}

	var p model.Product
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		p, err = resolveProduct(ctx, r.Products(), id)
		return err
	})
	if err != nil {
		return ProductView{}, Unexpected(err)
	}

	u.cache.Set(ctx, p)
	return toProductView(p), nil
}

// Create は code の重複を先に確認する
func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (ProductView, error) {
	if err := in.validate(); err != nil {
		return ProductView{}, err
	}

	var p model.Product
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := ensureCodeAvailable(ctx, r.Products(), strings.TrimSpace(in.Code)); err != nil {
			return err
		}

		now := u.nowMillis()
		in.applyTo(&p)
		p.CreatedAt = now
		p.UpdatedAt = now

		if err := r.Products().Create(ctx, &p); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return Duplicate("Product", "code", p.Code)
			}
			return Unexpected(err)
		}
		return nil
	})
	if err != nil {
		if KindOf(err) == KindDuplicateResource {
			u.logger.Warnf("product create rejected: %v", err)
		}
		return ProductView{}, Unexpected(err)
	}

	u.logger.Infof("product created id=%d code=%s", p.ID, p.Code)
	return toProductView(p), nil
}

// Update は code が変わるときだけ重複確認
func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (ProductView, error) {
	if err := in.validate(); err != nil {
		return ProductView{}, err
	}

	var p model.Product
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		p, err = resolveProduct(ctx, r.Products(), id)
		if err != nil {
			return err
		}

		code := strings.TrimSpace(in.Code)
		if code != p.Code {
			if err := ensureCodeAvailable(ctx, r.Products(), code); err != nil {
				return err
			}
		}

		in.applyTo(&p)
		// updatedAt >= createdAt
		now := u.nowMillis()
		if now < p.CreatedAt {
			now = p.CreatedAt
		}
		p.UpdatedAt = now

		if err := r.Products().Update(ctx, &p); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return Duplicate("Product", "code", p.Code)
			}
			return notFoundOr(err, "Product", id)
		}
		return nil
	})
	if err != nil {
		return ProductView{}, Unexpected(err)
	}

	u.cache.Invalidate(ctx, id)
	u.logger.Infof("product updated id=%d code=%s", p.ID, p.Code)
	return toProductView(p), nil
}

// Delete は参照しているカート・お気に入り明細も同じTxで削除する
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := resolveProduct(ctx, r.Products(), id); err != nil {
			return err
		}
		if err := r.CartItems().DeleteByProductID(ctx, id); err != nil {
			return Unexpected(err)
		}
		if err := r.WishlistItems().DeleteByProductID(ctx, id); err != nil {
			return Unexpected(err)
		}
		if err := r.Products().Delete(ctx, id); err != nil {
			return notFoundOr(err, "Product", id)
		}
		return nil
	})
	if err != nil {
		return Unexpected(err)
	}

	u.cache.Invalidate(ctx, id)
	u.logger.Infof("product deleted id=%d", id)
	return nil
}

func ensureCodeAvailable(ctx context.Context, products repo.ProductRepository, code string) error {
	exists, err := products.ExistsByCode(ctx, code)
	if err != nil {
		return Unexpected(err)
	}
	if exists {
		return Duplicate("Product", "code", code)
	}
	return nil
}
