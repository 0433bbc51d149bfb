package model

import "github.com/shopspring/decimal"

type InventoryStatus string

const (
	InventoryInStock    InventoryStatus = "IN_STOCK"
	InventoryLowStock   InventoryStatus = "LOW_STOCK"
	InventoryOutOfStock InventoryStatus = "OUT_OF_STOCK"
)

func (s InventoryStatus) Valid() bool {
	switch s {
	case InventoryInStock, InventoryLowStock, InventoryOutOfStock:
		return true
	}
	return false
}

// createdAt/updatedAt はエポックミリ秒。updatedAt >= createdAt
type Product struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code              string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Name              string          `gorm:"type:varchar(255);not null" json:"name"`
	Description       string          `gorm:"type:varchar(2000)" json:"description,omitempty"`
	Image             string          `gorm:"type:varchar(500)" json:"image,omitempty"`
	Category          string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity          int             `gorm:"not null;default:0" json:"quantity"`
	InternalReference string          `gorm:"type:varchar(100)" json:"internalReference,omitempty"`
	ShellID           *int64          `json:"shellId,omitempty"`
	InventoryStatus   InventoryStatus `gorm:"type:varchar(20);not null" json:"inventoryStatus"`
	Rating            *float64        `json:"rating,omitempty"`
	CreatedAt         int64           `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt         int64           `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
