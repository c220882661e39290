package entity

import (
	"time"
)

// Request lifecycle statuses. Any status may follow any other: the admin picks
// the next label, the engine does not enforce a linear path.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusApproved   = "Approved"
	StatusRejected   = "Rejected"
	StatusCompleted  = "Completed"
)

const (
	ActionReturn   = "Return"
	ActionExchange = "Exchange"
)

// Credit options for exchanges priced below the original item.
const (
	CreditNextOrder = "next_order"
	CreditApplyNow  = "apply_now"
)

// Code statuses are monotonic: Active -> Used or Expired.
const (
	CodeStatusInactive = "Inactive"
	CodeStatusActive   = "Active"
	CodeStatusUsed     = "Used"
	CodeStatusExpired  = "Expired"
)

const (
	PaymentNotRequired = "Not Required"
	PaymentPending     = "Pending Payment"
	PaymentPaid        = "Paid"
)

type ReturnRequest struct {
	ID        string `json:"id" firestore:"id"`
	RequestID string `json:"request_id" firestore:"requestId"`

	OrderNumber    string `json:"order_number" firestore:"orderNumber"`
	ShopifyOrderID string `json:"shopify_order_id,omitempty" firestore:"shopifyOrderId,omitempty"`
	ShopifyItemID  string `json:"shopify_item_id" firestore:"shopifyItemId"`

	ProductName  string  `json:"product_name" firestore:"productName"`
	ProductSKU   string  `json:"product_sku,omitempty" firestore:"productSku,omitempty"`
	ProductPrice float64 `json:"product_price" firestore:"productPrice"`
	ProductImage string  `json:"product_image,omitempty" firestore:"productImage,omitempty"`

	CustomerName   string `json:"customer_name" firestore:"customerName"`
	CustomerEmail  string `json:"customer_email" firestore:"customerEmail"`
	CustomerMobile string `json:"customer_mobile,omitempty" firestore:"customerMobile,omitempty"`

	ActionType  string `json:"action_type" firestore:"actionType"`
	Reason      string `json:"reason" firestore:"reason"`
	OtherReason string `json:"other_reason,omitempty" firestore:"otherReason,omitempty"`

	ExchangeDetails      string   `json:"exchange_details,omitempty" firestore:"exchangeDetails,omitempty"`
	ExchangeProductID    string   `json:"exchange_product_id,omitempty" firestore:"exchangeProductId,omitempty"`
	ExchangeProductName  string   `json:"exchange_product_name,omitempty" firestore:"exchangeProductName,omitempty"`
	ExchangeProductSKU   string   `json:"exchange_product_sku,omitempty" firestore:"exchangeProductSku,omitempty"`
	ExchangeProductPrice *float64 `json:"exchange_product_price,omitempty" firestore:"exchangeProductPrice,omitempty"`

	PriceDifference float64 `json:"price_difference" firestore:"priceDifference"`

	PaymentStatus        string     `json:"payment_status" firestore:"paymentStatus"`
	PaymentMethod        string     `json:"payment_method,omitempty" firestore:"paymentMethod,omitempty"`
	PaymentTransactionID string     `json:"payment_transaction_id,omitempty" firestore:"paymentTransactionId,omitempty"`
	PaymentDate          *time.Time `json:"payment_date,omitempty" firestore:"paymentDate,omitempty"`

	RefundAmount float64 `json:"refund_amount" firestore:"refundAmount"`
	CreditOption string  `json:"credit_option,omitempty" firestore:"creditOption,omitempty"`

	DiscountCode       string     `json:"discount_code,omitempty" firestore:"discountCode,omitempty"`
	DiscountCodeStatus string     `json:"discount_code_status,omitempty" firestore:"discountCodeStatus,omitempty"`
	DiscountCodeExpiry *time.Time `json:"discount_code_expiry,omitempty" firestore:"discountCodeExpiry,omitempty"`

	StoreCreditAmount float64    `json:"store_credit_amount" firestore:"storeCreditAmount"`
	StoreCreditCode   string     `json:"store_credit_code,omitempty" firestore:"storeCreditCode,omitempty"`
	StoreCreditStatus string     `json:"store_credit_status,omitempty" firestore:"storeCreditStatus,omitempty"`
	StoreCreditExpiry *time.Time `json:"store_credit_expiry,omitempty" firestore:"storeCreditExpiry,omitempty"`

	ImagePath string `json:"image_path,omitempty" firestore:"imagePath,omitempty"`

	Status     string `json:"status" firestore:"status"`
	AdminNotes string `json:"admin_notes,omitempty" firestore:"adminNotes,omitempty"`

	SubmittedAt time.Time  `json:"submitted_at" firestore:"submittedAt"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" firestore:"updatedAt,omitempty"`
}

// HasStoreCredit reports whether a store-credit code is already attached. The
// approval path must never mint a second code for the same request.
func (r *ReturnRequest) HasStoreCredit() bool {
	return r.StoreCreditCode != ""
}

// StatusHistoryEntry is append-only: one entry per status-affecting mutation,
// never updated or deleted. OldStatus is empty for the initial entry.
type StatusHistoryEntry struct {
	ID        string    `json:"id" firestore:"id"`
	RequestID string    `json:"request_id" firestore:"requestId"`
	OldStatus string    `json:"old_status,omitempty" firestore:"oldStatus,omitempty"`
	NewStatus string    `json:"new_status" firestore:"newStatus"`
	ChangedBy string    `json:"changed_by" firestore:"changedBy"`
	ChangedAt time.Time `json:"changed_at" firestore:"changedAt"`
}
