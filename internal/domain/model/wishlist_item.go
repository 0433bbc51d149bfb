package model

type WishlistItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    int64   `gorm:"not null;uniqueIndex:ux_wishlist_items_user_product,priority:1"`
	ProductID int64   `gorm:"not null;uniqueIndex:ux_wishlist_items_user_product,priority:2;index"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`
}
