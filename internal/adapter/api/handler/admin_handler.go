package handler

import (
	"github.com/labstack/echo/v4"

	"returnex/internal/usecase"
	"returnex/pkg/errors"
	"returnex/pkg/response"
	"returnex/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListRequests(c echo.Context) error {
	status := c.QueryParam("status")
	search := c.QueryParam("search")
	pagination := utils.GetPaginationParams(c)

	requests, total, err := h.adminUseCase.ListRequests(
		c.Request().Context(),
		status,
		search,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) GetRequest(c echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return response.Error(c, errors.BadRequest("Request ID is required", nil))
	}

	detail, err := h.adminUseCase.GetRequestDetail(c.Request().Context(), requestID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

type updateStatusRequest struct {
	Status           string `json:"status" validate:"required"`
	Notes            string `json:"notes"`
	SendNotification bool   `json:"send_notification"`
}

func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return response.Error(c, errors.BadRequest("Request ID is required", nil))
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminEmail, _ := c.Get("admin_email").(string)

	updated, err := h.adminUseCase.UpdateStatus(
		c.Request().Context(),
		requestID,
		req.Status,
		req.Notes,
		req.SendNotification,
		adminEmail,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, updated)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
