package handler

import (
	"github.com/labstack/echo/v4"

	"returnex/internal/usecase"
	"returnex/pkg/response"
)

type OrderHandler struct {
	verificationUseCase *usecase.VerificationUseCase
}

func NewOrderHandler(verificationUseCase *usecase.VerificationUseCase) *OrderHandler {
	return &OrderHandler{
		verificationUseCase: verificationUseCase,
	}
}

type verifyOrderRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
}

func (h *OrderHandler) VerifyOrder(c echo.Context) error {
	var req verifyOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.verificationUseCase.VerifyOrder(c.Request().Context(), req.OrderNumber, req.Contact)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
