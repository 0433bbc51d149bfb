package handler

import (
	"net/http"

	"producttrial/internal/security"
	"producttrial/internal/usecase"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	uc   *usecase.WishlistUsecase
	gate *security.Gate
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase, gate *security.Gate) *WishlistHandler {
	return &WishlistHandler{uc: uc, gate: gate}
}

type AddWishlistRequest struct {
	ProductID *int64 `json:"productId" validate:"required"`
}

func (h *WishlistHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/wishlist")

	g.GET("", h.list)
	g.POST("/add", h.add)
	g.DELETE("/:id", h.remove)
}

func (h *WishlistHandler) list(c echo.Context) error {
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

// 同じ商品なら既存の明細を返す
func (h *WishlistHandler) add(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	var req AddWishlistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Add(c.Request().Context(), email, *req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WishlistHandler) remove(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Remove(c.Request().Context(), email, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
