package entity

import (
	"time"
)

// ContactCandidates holds every contact value found across the order, its
// billing/shipping addresses and the customer profile, in lookup order.
// Verification tries all of them; collapsing to a single value loses matches.
type ContactCandidates struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

func (c ContactCandidates) Empty() bool {
	return len(c.Emails) == 0 && len(c.Phones) == 0
}

// PrimaryEmail returns the first available email, or "".
func (c ContactCandidates) PrimaryEmail() string {
	if len(c.Emails) > 0 {
		return c.Emails[0]
	}
	return ""
}

// PrimaryPhone returns the first available phone, or "".
func (c ContactCandidates) PrimaryPhone() string {
	if len(c.Phones) > 0 {
		return c.Phones[0]
	}
	return ""
}

// ResolvedOrder is the merged view of an external order and, when the order
// itself lacked contact detail, its customer profile. Missing contact data is
// a valid state, not an error.
type ResolvedOrder struct {
	ID           int64             `json:"id"`
	OrderNumber  string            `json:"order_number"`
	CustomerName string            `json:"customer_name"`
	Contacts     ContactCandidates `json:"contacts"`
	OrderDate    time.Time         `json:"order_date"`
	TotalPrice   float64           `json:"total_price"`
	Items        []LineItem        `json:"items"`
}

type LineItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	VariantID    int64   `json:"variant_id"`
	ProductName  string  `json:"product_name"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ProductImage string  `json:"product_image"`
}
