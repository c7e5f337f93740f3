package http

import (
	"errors"
	"net/http"
	"strconv"

	appDomain "moneymornings-backend/internal/domain/application"
	"moneymornings-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	FirstName       string  `json:"first_name"       validate:"required,notblank"`
	LastName        string  `json:"last_name"        validate:"required,notblank"`
	Email           string  `json:"email"            validate:"required,email"`
	Phone           string  `json:"phone"            validate:"required,notblank"`
	BusinessName    *string `json:"business_name"`
	ServiceInterest string  `json:"service_interest" validate:"required,notblank"`
	FundingAmount   *string `json:"funding_amount"`
	TimeInBusiness  *string `json:"time_in_business"`
}

type updateApplicationReq struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending contacted qualified approved rejected"`
	Notes  *string `json:"notes"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		BusinessName:    req.BusinessName,
		ServiceInterest: req.ServiceInterest,
		FundingAmount:   req.FundingAmount,
		TimeInBusiness:  req.TimeInBusiness,
	})
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save application"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	limit := intQuery(c, "limit", 100)
	skip := intQuery(c, "skip", 0)
	status := c.QueryParam("status")

	dtos, err := h.uc.List(c.Request().Context(), status, limit, skip)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	appID := c.Param("application_id")
	dto, err := h.uc.Get(c.Request().Context(), appID)
	if err != nil {
		if errors.Is(err, appDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "application not found"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	appID := c.Param("application_id")

	var req updateApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), appID, application.UpdateInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto)
	case errors.Is(err, appDomain.ErrEmptyUpdate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no update data provided"})
	case errors.Is(err, appDomain.ErrInvalidStatus):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid status value"})
	case errors.Is(err, appDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "application not found"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (h *ApplicationHandler) Stats(c echo.Context) error {
	dto, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dto)
}

func intQuery(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
