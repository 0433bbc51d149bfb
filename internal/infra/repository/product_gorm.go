package repository

import (
	"context"
	"strings"

	"producttrial/internal/domain/model"
	repo "producttrial/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// category: 大文字小文字を無視した完全一致
// search: name/description/code のどれかに部分一致（OR）
// 条件が無ければ "" を返す
func productFilterConditions(f repo.ProductFilter) (string, []interface{}) {
	var (
		parts []string
		args  []interface{}
	)

	if c := strings.TrimSpace(f.Category); c != "" {
		parts = append(parts, "LOWER(category) = ?")
		args = append(args, strings.ToLower(c))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		parts = append(parts, "(LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR LOWER(code) LIKE ?)")
		args = append(args, like, like, like)
	}

	return strings.Join(parts, " AND "), args
}

// % と _ をリテラル扱いにする
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *ProductGormRepository) filtered(ctx context.Context, f repo.ProductFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&model.Product{})
	if where, args := productFilterConditions(f); where != "" {
		tx = tx.Where(where, args...)
	}
	return tx
}

// ページングなしの全件（name昇順）
func (r *ProductGormRepository) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	products := make([]model.Product, 0)

	if err := r.filtered(ctx, f).
		Order("name asc").
		Order("id asc").
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// ページング付き一覧。Pageは0始まり
func (r *ProductGormRepository) ListPage(ctx context.Context, q repo.ProductPageQuery) ([]model.Product, int64, error) {
	products := make([]model.Product, 0)
	var total int64

	//total（件数）
	if err := r.filtered(ctx, q.Filter).Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	col, ok := repo.ProductSortColumns[q.SortBy]
	if !ok {
		col = "name"
	}
	dir := "asc"
	if q.SortDesc {
		dir = "desc"
	}

	if err := r.filtered(ctx, q.Filter).
		Order(col + " " + dir).
		Order("id " + dir).
		Offset(q.Page * q.Size).
		Limit(q.Size).
		Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

func (r *ProductGormRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

// 商品の更新（全項目）
func (r *ProductGormRepository) Update(ctx context.Context, p *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"code":               p.Code,
		"name":               p.Name,
		"description":        p.Description,
		"image":              p.Image,
		"category":           p.Category,
		"price":              p.Price,
		"quantity":           p.Quantity,
		"internal_reference": p.InternalReference,
		"shell_id":           p.ShellID,
		"inventory_status":   p.InventoryStatus,
		"rating":             p.Rating,
		"updated_at":         p.UpdatedAt,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（物理削除）
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
