package handler

import (
	"net/http"

	"producttrial/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	uc *usecase.ContactUsecase
}

// DI
func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

type contactRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=300"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func (h *ContactHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/contact", h.submit)
}

func (h *ContactHandler) submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	msg, err := h.uc.Submit(c.Request().Context(), usecase.ContactInput{
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: msg})
}
