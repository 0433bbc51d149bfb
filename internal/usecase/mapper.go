package usecase

import (
	"producttrial/internal/domain/model"

	"github.com/shopspring/decimal"
)

// JSONで返す形
type ProductView struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Image             string          `json:"image,omitempty"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	InternalReference string          `json:"internalReference,omitempty"`
	ShellID           *int64          `json:"shellId,omitempty"`
	InventoryStatus   string          `json:"inventoryStatus"`
	Rating            *float64        `json:"rating,omitempty"`
	CreatedAt         int64           `json:"createdAt"`
	UpdatedAt         int64           `json:"updatedAt"`
}

type CartItemView struct {
	ID       int64       `json:"id"`
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
}

type WishlistItemView struct {
	ID      int64       `json:"id"`
	Product ProductView `json:"product"`
}

type ProductPage struct {
	Content       []ProductView `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
}

func toProductView(p model.Product) ProductView {
	return ProductView{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		Image:             p.Image,
		Category:          p.Category,
		Price:             p.Price,
		Quantity:          p.Quantity,
		InternalReference: p.InternalReference,
		ShellID:           p.ShellID,
		InventoryStatus:   string(p.InventoryStatus),
		Rating:            p.Rating,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductViews(ps []model.Product) []ProductView {
	out := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductView(p))
	}
	return out
}

func toCartItemView(it model.CartItem) CartItemView {
	return CartItemView{ID: it.ID, Product: toProductView(it.Product), Quantity: it.Quantity}
}

func toWishlistItemView(it model.WishlistItem) WishlistItemView {
	return WishlistItemView{ID: it.ID, Product: toProductView(it.Product)}
}
