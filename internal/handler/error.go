package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"producttrial/internal/middleware"
	"producttrial/internal/security"
	"producttrial/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全エラー共通のボディ
type ErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func statusOf(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindDuplicateResource:
		return http.StatusConflict
	case usecase.KindUnauthorized:
		return http.StatusForbidden
	case usecase.KindAuthenticationFailure:
		return http.StatusUnauthorized
	case usecase.KindValidationFailure:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	e, ok := usecase.AsError(err)
	if !ok {
		e, _ = usecase.AsError(usecase.Unexpected(err))
	}

	status := statusOf(e.Kind)
	resp := ErrorResponse{Status: status, Message: e.Message, Timestamp: time.Now()}
	if e.Kind == usecase.KindValidationFailure {
		resp.Errors = e.Fields
	}

	//500は中身をログにだけ出す
	if status == http.StatusInternalServerError {
		c.Logger().Errorf("unexpected error: %v", err)
	}
	return c.JSON(status, resp)
}

// bind + validate。返すのは usecase.Error（書き込みは呼び出し側）
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		// JSONが壊れている等
		msg := "malformed request body"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		return usecase.InvalidField("body", msg)
	}
	return c.Validate(req)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, usecase.InvalidField("id", "id must be a number")
	}
	return id, nil
}

// principalが無ければ AuthenticationFailure
func currentEmail(c echo.Context, gate *security.Gate) (string, error) {
	email, ok := gate.CurrentPrincipalEmail(middleware.CredentialsFrom(c))
	if !ok {
		return "", usecase.AuthenticationFailure("Authentication required")
	}
	return email, nil
}
