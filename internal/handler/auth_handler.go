package handler

import (
	"net/http"

	"producttrial/internal/security"
	auth "producttrial/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
	deleteUC   *auth.DeleteAccountUsecase
	gate       *security.Gate
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	deleteUC *auth.DeleteAccountUsecase,
	gate *security.Gate,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		deleteUC:   deleteUC,
		gate:       gate,
	}
}

// /account のリクエストボディ。
type registerRequest struct {
	Username  string `json:"username" validate:"required,max=100"`
	Firstname string `json:"firstname" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// /token のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// /account, /token を登録
func (h *AuthHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/account", h.register)
	api.POST("/token", h.login)
	api.DELETE("/account", h.deleteAccount)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username:  req.Username,
		Firstname: req.Firstname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) deleteAccount(c echo.Context) error {
	email, err := currentEmail(c, h.gate)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.deleteUC.Execute(c.Request().Context(), email); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
