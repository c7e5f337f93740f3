package http

import (
	"net/http"

	"moneymornings-backend/internal/usecase/statuscheck"

	"github.com/labstack/echo/v4"
)

type StatusCheckHandler struct{ uc *statuscheck.Usecase }

func NewStatusCheckHandler(uc *statuscheck.Usecase) *StatusCheckHandler {
	return &StatusCheckHandler{uc: uc}
}

type createStatusCheckReq struct {
	ClientName string `json:"client_name" validate:"required,notblank"`
}

func (h *StatusCheckHandler) Create(c echo.Context) error {
	var req createStatusCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), statuscheck.CreateInput{ClientName: req.ClientName})
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StatusCheckHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dtos)
}
