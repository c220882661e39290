package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"returnex/internal/domain/service"
	"returnex/internal/usecase"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
	"returnex/pkg/response"
)

const maxEvidenceSize = 5 << 20 // 5MB

var allowedEvidenceTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

type ReturnHandler struct {
	returnUseCase *usecase.ReturnUseCase
	fileService   service.FileUploadService
}

func NewReturnHandler(returnUseCase *usecase.ReturnUseCase, fileService service.FileUploadService) *ReturnHandler {
	return &ReturnHandler{
		returnUseCase: returnUseCase,
		fileService:   fileService,
	}
}

// Submit accepts the multipart submission form, stores the optional evidence
// image and creates the return/exchange request.
func (h *ReturnHandler) Submit(c echo.Context) error {
	input := usecase.SubmitRequestInput{
		OrderID:     c.FormValue("order_id"),
		OrderNumber: c.FormValue("order_number"),
		OrderItemID: c.FormValue("order_item_id"),

		ProductName:  c.FormValue("product_name"),
		ProductSKU:   c.FormValue("product_sku"),
		ProductImage: c.FormValue("product_image"),

		CustomerName:   c.FormValue("customer_name"),
		CustomerEmail:  c.FormValue("customer_email"),
		CustomerMobile: c.FormValue("customer_mobile"),

		ActionType:  c.FormValue("action_type"),
		Reason:      c.FormValue("reason"),
		OtherReason: c.FormValue("other_reason"),

		ExchangeDetails:     c.FormValue("exchange_details"),
		ExchangeProductID:   c.FormValue("exchange_product_id"),
		ExchangeProductName: c.FormValue("exchange_product_name"),
		ExchangeProductSKU:  c.FormValue("exchange_product_sku"),

		CreditOption:         c.FormValue("credit_option"),
		PaymentMethod:        c.FormValue("payment_method"),
		PaymentTransactionID: c.FormValue("payment_transaction_id"),
	}

	if raw := c.FormValue("product_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid product price", err))
		}
		input.ProductPrice = price
	}

	if raw := c.FormValue("exchange_product_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid exchange product price", err))
		}
		input.ExchangeProductPrice = &price
	}

	imagePath, err := h.uploadEvidence(c)
	if err != nil {
		return response.Error(c, err)
	}
	input.ImagePath = imagePath

	request, err := h.returnUseCase.Submit(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *ReturnHandler) GetStatus(c echo.Context) error {
	requestID := c.Param("requestId")
	if requestID == "" {
		return response.Error(c, errors.BadRequest("Request ID is required", nil))
	}

	request, err := h.returnUseCase.GetStatus(c.Request().Context(), requestID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *ReturnHandler) uploadEvidence(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No evidence attached; that is fine.
		return "", nil
	}

	if fileHeader.Size > maxEvidenceSize {
		return "", errors.BadRequest("Evidence image must be 5MB or smaller", nil)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedEvidenceTypes[contentType] {
		return "", errors.BadRequest("Only image files are allowed", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Internal("Failed to read uploaded file", err)
	}
	defer src.Close()

	url, err := h.fileService.UploadFile(c.Request().Context(), src, contentType, "returns/evidence")
	if err != nil {
		logger.Error("Evidence upload failed: %v", err)
		return "", errors.Internal("Failed to store evidence image", err)
	}

	return url, nil
}
