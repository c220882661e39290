package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"returnex/internal/domain/service"
	"returnex/pkg/errors"
)

type fakeOrderSource struct {
	orders    map[string]*service.SourceOrder
	customers map[int64]*service.SourceCustomer
	products  map[int64]*service.SourceProduct
}

func (s *fakeOrderSource) FindOrderByNumber(ctx context.Context, orderNumber string) (*service.SourceOrder, error) {
	return s.orders[orderNumber], nil
}

func (s *fakeOrderSource) GetCustomer(ctx context.Context, customerID int64) (*service.SourceCustomer, error) {
	return s.customers[customerID], nil
}

func (s *fakeOrderSource) GetProduct(ctx context.Context, productID int64) (*service.SourceProduct, error) {
	return s.products[productID], nil
}

func testOrder(createdAt time.Time) *service.SourceOrder {
	return &service.SourceOrder{
		ID:         5551234,
		Name:       "#1001",
		Email:      "buyer@example.com",
		CreatedAt:  createdAt,
		TotalPrice: "800.00",
		Customer: &service.SourceCustomer{
			ID:        42,
			FirstName: "Ayu",
			LastName:  "Lestari",
		},
		ShippingAddress: &service.SourceAddress{Phone: "+62 812-0000-1111"},
		LineItems: []service.SourceLineItem{
			{
				ID:        9001,
				ProductID: 7001,
				VariantID: 8001,
				Name:      "Canvas Tote",
				SKU:       "TOTE-01",
				Quantity:  1,
				Price:     "800.00",
			},
		},
	}
}

func TestVerifyOrder(t *testing.T) {
	source := &fakeOrderSource{
		orders: map[string]*service.SourceOrder{"#1001": testOrder(time.Now().AddDate(0, 0, -1))},
	}
	uc := NewVerificationUseCase(source, 3)

	t.Run("matching email", func(t *testing.T) {
		result, err := uc.VerifyOrder(context.Background(), "#1001", "BUYER@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "#1001", result.Order.OrderNumber)
		assert.Equal(t, "Ayu Lestari", result.Order.CustomerName)
		assert.Equal(t, float64(800), result.Order.TotalPrice)
		assert.True(t, result.Window.Eligible)
		assert.Equal(t, 1, result.Window.DaysElapsed)
	})

	t.Run("matching phone from shipping address", func(t *testing.T) {
		result, err := uc.VerifyOrder(context.Background(), "#1001", "6281200001111")
		assert.NoError(t, err)
		assert.NotNil(t, result.Order)
	})

	t.Run("contact mismatch", func(t *testing.T) {
		_, err := uc.VerifyOrder(context.Background(), "#1001", "stranger@example.com")
		assert.True(t, errors.Is(err, "CONTACT_MISMATCH"), "got %v", err)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := uc.VerifyOrder(context.Background(), "#9999", "buyer@example.com")
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})

	t.Run("blank input", func(t *testing.T) {
		_, err := uc.VerifyOrder(context.Background(), " ", "buyer@example.com")
		assert.True(t, errors.Is(err, "BAD_REQUEST"))

		_, err = uc.VerifyOrder(context.Background(), "#1001", "")
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	})
}

func TestVerifyOrderNoContactOnFile(t *testing.T) {
	order := testOrder(time.Now())
	order.Email = ""
	order.Customer = nil
	order.ShippingAddress = nil

	uc := NewVerificationUseCase(&fakeOrderSource{
		orders: map[string]*service.SourceOrder{"#1001": order},
	}, 3)

	_, err := uc.VerifyOrder(context.Background(), "#1001", "buyer@example.com")
	assert.True(t, errors.Is(err, "NO_CONTACT_ON_ORDER"), "got %v", err)
}

func TestResolveOrderMergesCustomerProfile(t *testing.T) {
	order := testOrder(time.Now())
	order.Email = ""

	uc := NewVerificationUseCase(&fakeOrderSource{
		orders: map[string]*service.SourceOrder{"#1001": order},
		customers: map[int64]*service.SourceCustomer{
			42: {ID: 42, Email: "profile@example.com", Phone: "5550102030", FirstName: "Ayu", LastName: "Lestari"},
		},
	}, 3)

	resolved, err := uc.ResolveOrder(context.Background(), "#1001")
	assert.NoError(t, err)
	assert.Contains(t, resolved.Contacts.Emails, "profile@example.com")
	assert.Contains(t, resolved.Contacts.Phones, "5550102030")
}

func TestResolveOrderItemImageFallbacks(t *testing.T) {
	newUC := func(order *service.SourceOrder, products map[int64]*service.SourceProduct) *VerificationUseCase {
		return NewVerificationUseCase(&fakeOrderSource{
			orders:   map[string]*service.SourceOrder{"#1001": order},
			products: products,
		}, 3)
	}

	t.Run("line item property wins", func(t *testing.T) {
		order := testOrder(time.Now())
		order.LineItems[0].Properties = []service.SourceItemProperty{{Name: "_image", Value: "https://cdn.example.com/custom.png"}}
		order.LineItems[0].Image = &service.SourceImage{Src: "https://cdn.example.com/attached.png"}

		resolved, err := newUC(order, nil).ResolveOrder(context.Background(), "#1001")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/custom.png", resolved.Items[0].ProductImage)
	})

	t.Run("attached image next", func(t *testing.T) {
		order := testOrder(time.Now())
		order.LineItems[0].Image = &service.SourceImage{Src: "https://cdn.example.com/attached.png"}

		resolved, err := newUC(order, nil).ResolveOrder(context.Background(), "#1001")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/attached.png", resolved.Items[0].ProductImage)
	})

	t.Run("variant specific product image", func(t *testing.T) {
		products := map[int64]*service.SourceProduct{
			7001: {
				ID:    7001,
				Image: &service.SourceImage{Src: "https://cdn.example.com/main.png"},
				Images: []service.SourceImage{
					{Src: "https://cdn.example.com/variant.png", VariantIDs: []int64{8001}},
				},
			},
		}

		resolved, err := newUC(testOrder(time.Now()), products).ResolveOrder(context.Background(), "#1001")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/variant.png", resolved.Items[0].ProductImage)
	})

	t.Run("placeholder when nothing resolves", func(t *testing.T) {
		resolved, err := newUC(testOrder(time.Now()), nil).ResolveOrder(context.Background(), "#1001")
		assert.NoError(t, err)
		assert.Contains(t, resolved.Items[0].ProductImage, "via.placeholder.com")
	})
}
