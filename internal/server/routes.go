package server

import (
	"producttrial/internal/handler"
	"producttrial/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Handlers は /api に載せるハンドラ一式
type Handlers struct {
	Auth         *handler.AuthHandler
	Cart         *handler.CartHandler
	Wishlist     *handler.WishlistHandler
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Contact      *handler.ContactHandler
	Health       *handler.HealthHandler
}

// 全ルートを登録。/api 配下は AuthJWT で Credentials を入れてから各handlerへ
func RegisterRoutes(e *echo.Echo, tokens middleware.TokenParser, h Handlers) {
	h.Health.RegisterRoutes(e)

	api := e.Group("/api")
	api.Use(middleware.AuthJWT(tokens))

	h.Auth.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api)
	h.Wishlist.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.AdminProduct.RegisterRoutes(api)
	h.Contact.RegisterRoutes(api)
}
