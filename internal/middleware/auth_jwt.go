package middleware

import (
	"strings"
	"time"

	"producttrial/internal/security"

	"github.com/labstack/echo/v4"
)

const (
	CtxCredentialsKey = "credentials" // *security.Credentials
)

// Bearerトークンを検証してemailを返す約束
type TokenParser interface {
	Parse(raw string) (string, error)
}

// AuthJWT はトークンからCredentialsを作ってcontextへ入れる。
// ここでは弾かない（無し・不正は anonymousUser）。401/403 は Gate を使う側が返す
func AuthJWT(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred := security.Anonymous()

			if raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
				if email, err := tokens.Parse(raw); err == nil {
					cred = security.Authenticated(email)
				} else {
					c.Logger().Debugf("bearer token rejected: %v", err)
				}
			}

			//contextへ保存
			c.Set(CtxCredentialsKey, cred)
			return next(c)
		}
	}
}

//Bearer形式か確認してtokenを抜く
func bearerToken(authz string) (string, bool) {
	if authz == "" {
		return "", false
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	return raw, raw != ""
}

// CredentialsFrom はAuthJWTが入れた値を取り出す。無ければ anonymous
func CredentialsFrom(c echo.Context) *security.Credentials {
	cred, ok := c.Get(CtxCredentialsKey).(*security.Credentials)
	if !ok || cred == nil {
		return security.Anonymous()
	}
	return cred
}

type errorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func errorJSON(status int, msg string) errorResponse {
	return errorResponse{Status: status, Message: msg, Timestamp: time.Now()}
}

func reject(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorJSON(status, msg))
}
