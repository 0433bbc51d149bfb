package handler

import (
	"net/http"
	"strconv"

	"producttrial/internal/security"
	"producttrial/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の参照API（ログイン必須）
type ProductHandler struct {
	uc   *usecase.ProductUsecase
	gate *security.Gate
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, gate *security.Gate) *ProductHandler {
	return &ProductHandler{uc: uc, gate: gate}
}

// 商品参照のルートを登録
func (h *ProductHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/products", h.list)
	api.GET("/products/:id", h.detail)
}

// page と size が両方あるときだけページ形式で返す
func (h *ProductHandler) list(c echo.Context) error {
	if _, err := currentEmail(c, h.gate); err != nil {
		return writeError(c, err)
	}

	page, err := optionalInt(c, "page")
	if err != nil {
		return writeError(c, err)
	}
	size, err := optionalInt(c, "size")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Size:     size,
		SortBy:   c.QueryParam("sortBy"),
		SortDir:  c.QueryParam("sortDir"),
	})
	if err != nil {
		return writeError(c, err)
	}

	if out.Page != nil {
		return c.JSON(http.StatusOK, out.Page)
	}
	return c.JSON(http.StatusOK, out.Items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	if _, err := currentEmail(c, h.gate); err != nil {
		return writeError(c, err)
	}

	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func optionalInt(c echo.Context, name string) (*int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, usecase.InvalidField(name, name+" must be a number")
	}
	return &n, nil
}
