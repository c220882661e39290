package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"returnex/internal/domain/entity"
	"returnex/pkg/errors"
)

func validReturnInput() SubmitRequestInput {
	return SubmitRequestInput{
		OrderID:       "5551234",
		OrderNumber:   "#1001",
		OrderItemID:   "9001",
		ProductName:   "Canvas Tote",
		ProductSKU:    "TOTE-01",
		ProductPrice:  800,
		CustomerName:  "Ayu Lestari",
		CustomerEmail: "ayu@example.com",
		ActionType:    entity.ActionReturn,
		Reason:        "Damaged",
	}
}

func TestSubmitReturn(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewReturnUseCase(repo, &fakeMailer{}, 90)

	request, err := uc.Submit(context.Background(), validReturnInput())
	assert.NoError(t, err)

	assert.Regexp(t, `^REQ-`, request.RequestID)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, entity.PaymentNotRequired, request.PaymentStatus)
	assert.Empty(t, request.DiscountCode)
	assert.False(t, request.HasStoreCredit(), "store credit is minted at approval, not submission")

	stored, err := repo.GetByRequestID(context.Background(), request.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, request.RequestID, stored.RequestID)

	history, err := repo.ListHistoryByRequestID(context.Background(), request.RequestID)
	assert.NoError(t, err)
	if assert.Len(t, history, 1) {
		assert.Empty(t, history[0].OldStatus)
		assert.Equal(t, entity.StatusPending, history[0].NewStatus)
		assert.Equal(t, "Customer", history[0].ChangedBy)
	}
}

func TestSubmitCheaperExchangeMintsDiscountCode(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewReturnUseCase(repo, &fakeMailer{}, 90)

	input := validReturnInput()
	input.ActionType = entity.ActionExchange
	input.ExchangeProductID = "7002"
	input.ExchangeProductName = "Canvas Tote Mini"
	input.ExchangeProductPrice = floatPtrTest(500)

	request, err := uc.Submit(context.Background(), input)
	assert.NoError(t, err)

	assert.Equal(t, float64(-300), request.PriceDifference)
	assert.Equal(t, float64(300), request.RefundAmount)
	assert.Equal(t, entity.CreditNextOrder, request.CreditOption, "credit option defaults to next_order")
	assert.Regexp(t, `^EXCH-`, request.DiscountCode)
	assert.Equal(t, entity.CodeStatusActive, request.DiscountCodeStatus)
	if assert.NotNil(t, request.DiscountCodeExpiry) {
		expected := time.Now().AddDate(0, 0, 90)
		assert.WithinDuration(t, expected, *request.DiscountCodeExpiry, time.Minute)
	}
}

func TestSubmitApplyNowExchangeSkipsDiscountCode(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewReturnUseCase(repo, &fakeMailer{}, 90)

	input := validReturnInput()
	input.ActionType = entity.ActionExchange
	input.ExchangeProductID = "7002"
	input.ExchangeProductPrice = floatPtrTest(500)
	input.CreditOption = entity.CreditApplyNow

	request, err := uc.Submit(context.Background(), input)
	assert.NoError(t, err)

	assert.Equal(t, float64(300), request.RefundAmount)
	assert.Empty(t, request.DiscountCode)
}

func TestSubmitPricierExchangePaymentStatus(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewReturnUseCase(repo, &fakeMailer{}, 90)

	input := validReturnInput()
	input.ActionType = entity.ActionExchange
	input.ExchangeProductID = "7002"
	input.ExchangeProductPrice = floatPtrTest(1000)

	request, err := uc.Submit(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, request.PaymentStatus)
	assert.Nil(t, request.PaymentDate)

	paid := validReturnInput()
	paid.ActionType = entity.ActionExchange
	paid.ExchangeProductID = "7002"
	paid.ExchangeProductPrice = floatPtrTest(1000)
	paid.PaymentMethod = "transfer"
	paid.PaymentTransactionID = "TXN-42"

	request, err = uc.Submit(context.Background(), paid)
	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, request.PaymentStatus)
	assert.NotNil(t, request.PaymentDate)
}

func TestSubmitValidation(t *testing.T) {
	uc := NewReturnUseCase(newFakeRequestRepo(), &fakeMailer{}, 90)

	cases := []struct {
		name   string
		mutate func(*SubmitRequestInput)
	}{
		{"missing order reference", func(in *SubmitRequestInput) { in.OrderID = ""; in.OrderNumber = "" }},
		{"missing item", func(in *SubmitRequestInput) { in.OrderItemID = "" }},
		{"missing customer name", func(in *SubmitRequestInput) { in.CustomerName = "" }},
		{"missing email", func(in *SubmitRequestInput) { in.CustomerEmail = "" }},
		{"missing reason", func(in *SubmitRequestInput) { in.Reason = "" }},
		{"bad action type", func(in *SubmitRequestInput) { in.ActionType = "Refund" }},
		{"exchange without target", func(in *SubmitRequestInput) { in.ActionType = entity.ActionExchange }},
		{"bad credit option", func(in *SubmitRequestInput) { in.CreditOption = "store_wallet" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validReturnInput()
			tc.mutate(&input)

			_, err := uc.Submit(context.Background(), input)
			assert.True(t, errors.Is(err, "BAD_REQUEST"), "expected BAD_REQUEST, got %v", err)
		})
	}
}

func TestGetStatus(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewReturnUseCase(repo, &fakeMailer{}, 90)

	created, err := uc.Submit(context.Background(), validReturnInput())
	assert.NoError(t, err)

	found, err := uc.GetStatus(context.Background(), created.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, created.RequestID, found.RequestID)

	_, err = uc.GetStatus(context.Background(), "REQ-0-000")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func floatPtrTest(v float64) *float64 { return &v }
