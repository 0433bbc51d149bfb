package handler

import (
	"net/http"

	"producttrial/internal/security"
	"producttrial/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc   *usecase.CartUsecase
	gate *security.Gate
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, gate *security.Gate) *CartHandler {
	return &CartHandler{uc: uc, gate: gate}
}

type AddCartRequest struct {
	ProductID *int64 `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=1"`
}

// /cart, /cart/add, /cart/{id} を登録
func (h *CartHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/cart")

	g.GET("", h.getCart)
	g.POST("/add", h.addToCart)
	g.PATCH("/:id", h.patchItem)
	g.DELETE("/:id", h.deleteItem)
	g.DELETE("", h.clear)
}

func (h *CartHandler) getCart(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	var req AddCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Add(c.Request().Context(), email, usecase.AddCartInput{
		ProductID: *req.ProductID,
		Quantity:  *req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), email, itemID, *req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Remove(c.Request().Context(), email, itemID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) clear(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Clear(c.Request().Context(), email); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
