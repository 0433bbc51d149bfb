package repository

import (
	"context"

	"producttrial/internal/domain/model"
)

// sortBy に使える項目（外部名 -> 列名）
var ProductSortColumns = map[string]string{
	"id":              "id",
	"code":            "code",
	"name":            "name",
	"category":        "category",
	"price":           "price",
	"quantity":        "quantity",
	"inventoryStatus": "inventory_status",
	"rating":          "rating",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}

func IsSortableProductField(field string) bool {
	_, ok := ProductSortColumns[field]
	return ok
}

// 一覧の絞り込み。空文字は条件なし
type ProductFilter struct {
	Category string
	Search   string
}

// ページング付き一覧（Pageは0始まり）
type ProductPageQuery struct {
	Filter   ProductFilter
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	ListPage(ctx context.Context, q ProductPageQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}
