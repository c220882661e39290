package service

import (
	"context"
	"time"
)

// OrderSource is the external e-commerce platform's order API. Returned
// records are heterogeneous and sometimes incomplete; absent nested fields
// are normal, not errors. A (nil, nil) return means "no such record".
type OrderSource interface {
	FindOrderByNumber(ctx context.Context, orderNumber string) (*SourceOrder, error)
	GetCustomer(ctx context.Context, customerID int64) (*SourceCustomer, error)
	GetProduct(ctx context.Context, productID int64) (*SourceProduct, error)
}

type SourceOrder struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	ContactEmail    string            `json:"contact_email"`
	Phone           string            `json:"phone"`
	CreatedAt       time.Time         `json:"created_at"`
	TotalPrice      string            `json:"total_price"`
	Customer        *SourceCustomer   `json:"customer"`
	BillingAddress  *SourceAddress    `json:"billing_address"`
	ShippingAddress *SourceAddress    `json:"shipping_address"`
	LineItems       []SourceLineItem  `json:"line_items"`
}

type SourceCustomer struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	DefaultAddress *SourceAddress `json:"default_address"`
}

type SourceAddress struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SourceLineItem struct {
	ID         int64                `json:"id"`
	ProductID  int64                `json:"product_id"`
	VariantID  int64                `json:"variant_id"`
	Name       string               `json:"name"`
	SKU        string               `json:"sku"`
	Quantity   int                  `json:"quantity"`
	Price      string               `json:"price"`
	Properties []SourceItemProperty `json:"properties"`
	Image      *SourceImage         `json:"image"`
}

type SourceItemProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SourceProduct struct {
	ID     int64         `json:"id"`
	Title  string        `json:"title"`
	Image  *SourceImage  `json:"image"`
	Images []SourceImage `json:"images"`
}

type SourceImage struct {
	ID         int64   `json:"id"`
	Src        string  `json:"src"`
	VariantIDs []int64 `json:"variant_ids"`
}
