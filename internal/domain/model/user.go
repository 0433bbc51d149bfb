package model

import "time"

// emailが認証の主キー（principal）
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Firstname    string    `gorm:"type:varchar(100)" json:"firstname,omitempty"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`

	// 削除時はDB側でもカスケード
	CartItems     []CartItem     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WishlistItems []WishlistItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
