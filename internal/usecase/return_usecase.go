package usecase

import (
	"context"
	"strings"
	"time"

	"returnex/internal/domain/entity"
	"returnex/internal/domain/repository"
	"returnex/internal/domain/service"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
)

type ReturnUseCase struct {
	requestRepo     repository.ReturnRequestRepository
	mailer          service.Mailer
	creditValidDays int
}

func NewReturnUseCase(
	requestRepo repository.ReturnRequestRepository,
	mailer service.Mailer,
	creditValidDays int,
) *ReturnUseCase {
	return &ReturnUseCase{
		requestRepo:     requestRepo,
		mailer:          mailer,
		creditValidDays: creditValidDays,
	}
}

type SubmitRequestInput struct {
	OrderID     string
	OrderNumber string
	OrderItemID string

	ProductName  string
	ProductSKU   string
	ProductPrice float64
	ProductImage string

	CustomerName   string
	CustomerEmail  string
	CustomerMobile string

	ActionType  string
	Reason      string
	OtherReason string

	ExchangeDetails      string
	ExchangeProductID    string
	ExchangeProductName  string
	ExchangeProductSKU   string
	ExchangeProductPrice *float64

	CreditOption         string
	PaymentMethod        string
	PaymentTransactionID string

	ImagePath string
}

// Submit validates a return/exchange submission, computes its settlement,
// persists it at Pending, logs the initial history entry and dispatches a
// confirmation email. The discount code for cheaper exchanges is minted here,
// at submission time; store credit for returns is minted only at approval.
func (uc *ReturnUseCase) Submit(ctx context.Context, input SubmitRequestInput) (*entity.ReturnRequest, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	if input.CreditOption == "" {
		input.CreditOption = entity.CreditNextOrder
	}

	settlement := service.ComputeSettlement(service.SettlementInput{
		ActionType:           input.ActionType,
		OriginalPrice:        input.ProductPrice,
		ExchangePrice:        input.ExchangeProductPrice,
		CreditOption:         input.CreditOption,
		PaymentTransactionID: input.PaymentTransactionID,
	})

	now := time.Now()
	request := &entity.ReturnRequest{
		RequestID:      service.GenerateRequestID(),
		OrderNumber:    input.OrderNumber,
		ShopifyOrderID: input.OrderID,
		ShopifyItemID:  input.OrderItemID,

		ProductName:  input.ProductName,
		ProductSKU:   input.ProductSKU,
		ProductPrice: input.ProductPrice,
		ProductImage: input.ProductImage,

		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerMobile: input.CustomerMobile,

		ActionType:  input.ActionType,
		Reason:      input.Reason,
		OtherReason: input.OtherReason,

		ExchangeDetails:      input.ExchangeDetails,
		ExchangeProductID:    input.ExchangeProductID,
		ExchangeProductName:  input.ExchangeProductName,
		ExchangeProductSKU:   input.ExchangeProductSKU,
		ExchangeProductPrice: input.ExchangeProductPrice,

		PriceDifference: settlement.PriceDifference,
		PaymentStatus:   settlement.PaymentStatus,
		RefundAmount:    settlement.RefundAmount,
		CreditOption:    input.CreditOption,

		ImagePath:   input.ImagePath,
		Status:      entity.StatusPending,
		SubmittedAt: now,
	}

	if settlement.PaymentStatus == entity.PaymentPaid {
		request.PaymentMethod = input.PaymentMethod
		request.PaymentTransactionID = input.PaymentTransactionID
		request.PaymentDate = &now
	}

	if settlement.NeedsDiscountCode {
		expiry := now.AddDate(0, 0, uc.creditValidDays)
		request.DiscountCode = service.GenerateCode(service.DiscountCodePrefix)
		request.DiscountCodeStatus = entity.CodeStatusActive
		request.DiscountCodeExpiry = &expiry
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	if err := uc.requestRepo.CreateHistory(ctx, &entity.StatusHistoryEntry{
		RequestID: request.RequestID,
		NewStatus: entity.StatusPending,
		ChangedBy: "Customer",
		ChangedAt: now,
	}); err != nil {
		return nil, err
	}

	subject, body := submissionEmail(request)
	uc.notify(request.RequestID, request.CustomerEmail, subject, body)

	return request, nil
}

func (uc *ReturnUseCase) GetStatus(ctx context.Context, requestID string) (*entity.ReturnRequest, error) {
	return uc.requestRepo.GetByRequestID(ctx, requestID)
}

// notify dispatches fire-and-forget: a failed send is logged and swallowed,
// never surfaced to the submitter.
func (uc *ReturnUseCase) notify(requestID, to string, subject, body string) {
	if to == "" {
		return
	}
	go func() {
		if err := uc.mailer.Send(context.Background(), to, subject, body); err != nil {
			logger.LogNotificationError(requestID, to, err)
		}
	}()
}

func validateSubmission(input SubmitRequestInput) error {
	missing := func(s string) bool { return strings.TrimSpace(s) == "" }

	switch {
	case missing(input.OrderID) && missing(input.OrderNumber):
		return errors.BadRequest("Order reference is required", nil)
	case missing(input.OrderItemID):
		return errors.BadRequest("Order item reference is required", nil)
	case missing(input.CustomerName):
		return errors.BadRequest("Customer name is required", nil)
	case missing(input.CustomerEmail):
		return errors.BadRequest("Customer email is required", nil)
	case missing(input.Reason):
		return errors.BadRequest("Reason is required", nil)
	}

	if input.ActionType != entity.ActionReturn && input.ActionType != entity.ActionExchange {
		return errors.BadRequest("Action type must be Return or Exchange", nil)
	}

	if input.ActionType == entity.ActionExchange && (missing(input.ExchangeProductID) || input.ExchangeProductPrice == nil) {
		return errors.BadRequest("Exchange requests require an exchange product", nil)
	}

	if input.CreditOption != "" &&
		input.CreditOption != entity.CreditNextOrder &&
		input.CreditOption != entity.CreditApplyNow {
		return errors.BadRequest("Credit option must be next_order or apply_now", nil)
	}

	return nil
}
