package model

// カートの明細
// (user_id, product_id) で1行だけ。追加は数量を加算する。
type CartItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    int64   `gorm:"not null;uniqueIndex:ux_cart_items_user_product,priority:1"`
	ProductID int64   `gorm:"not null;uniqueIndex:ux_cart_items_user_product,priority:2;index"`
	Quantity  int     `gorm:"not null"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`
}
