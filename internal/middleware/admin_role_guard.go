package middleware

import (
	"net/http"

	"producttrial/internal/security"

	"github.com/labstack/echo/v4"
)

// 管理者emailかどうかを確認します。
// bodyを読む前に判定するので、非管理者は409より先に403になる
func AdminOnly(gate *security.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred := CredentialsFrom(c)

			if _, ok := gate.CurrentPrincipalEmail(cred); !ok {
				return reject(c, http.StatusUnauthorized, "Authentication required")
			}

			//管理者だけ許可
			if !gate.IsAdmin(cred) {
				return reject(c, http.StatusForbidden, "Admin access required")
			}

			return next(c)
		}
	}
}
