package handler

import (
	"net/http"

	"producttrial/internal/domain/model"
	"producttrial/internal/middleware"
	"producttrial/internal/security"
	"producttrial/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 作成・更新どちらも全項目を受け取る
type ProductRequest struct {
	Code              string          `json:"code" validate:"required,max=100"`
	Name              string          `json:"name" validate:"required,max=255"`
	Description       string          `json:"description" validate:"max=2000"`
	Image             string          `json:"image" validate:"max=500"`
	Category          string          `json:"category" validate:"required,max=100"`
	Price             decimal.Decimal `json:"price" validate:"gt=0"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	InternalReference string          `json:"internalReference" validate:"max=100"`
	ShellID           *int64          `json:"shellId"`
	InventoryStatus   string          `json:"inventoryStatus" validate:"required,oneof=IN_STOCK LOW_STOCK OUT_OF_STOCK"`
	Rating            *float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Code:              r.Code,
		Name:              r.Name,
		Description:       r.Description,
		Image:             r.Image,
		Category:          r.Category,
		Price:             r.Price,
		Quantity:          r.Quantity,
		InternalReference: r.InternalReference,
		ShellID:           r.ShellID,
		InventoryStatus:   model.InventoryStatus(r.InventoryStatus),
		Rating:            r.Rating,
	}
}

// 商品の書き込み（管理者のみ）
type AdminProductHandler struct {
	uc   *usecase.ProductUsecase
	gate *security.Gate
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase, gate *security.Gate) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, gate: gate}
}

// AdminOnly はbindより前に走るので、非管理者は常に403
func (h *AdminProductHandler) RegisterRoutes(api *echo.Group) {
	adminOnly := middleware.AdminOnly(h.gate)

	api.POST("/products", h.createProduct, adminOnly)
	api.PATCH("/products/:id", h.updateProduct, adminOnly)
	api.DELETE("/products/:id", h.deleteProduct, adminOnly)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
