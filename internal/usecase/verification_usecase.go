package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"returnex/internal/domain/entity"
	"returnex/internal/domain/service"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
)

type VerificationUseCase struct {
	orderSource service.OrderSource
	windowDays  int
}

func NewVerificationUseCase(orderSource service.OrderSource, windowDays int) *VerificationUseCase {
	return &VerificationUseCase{
		orderSource: orderSource,
		windowDays:  windowDays,
	}
}

type VerifyOrderResult struct {
	Order  *entity.ResolvedOrder    `json:"order"`
	Window service.WindowEvaluation `json:"return_window"`
}

// VerifyOrder resolves an order by its display number, matches the supplied
// contact against every candidate on file and evaluates the return window.
func (uc *VerificationUseCase) VerifyOrder(ctx context.Context, orderNumber, contact string) (*VerifyOrderResult, error) {
	if strings.TrimSpace(orderNumber) == "" || strings.TrimSpace(contact) == "" {
		return nil, errors.BadRequest("Order number and contact information are required", nil)
	}

	order, err := uc.ResolveOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !service.MatchAnyContact(order.Contacts, contact) {
		if order.Contacts.Empty() {
			return nil, errors.NoContactOnOrder(fmt.Sprintf(
				"Order %s found, but it has no email or phone number on file. Please contact support.",
				order.OrderNumber))
		}
		return nil, errors.ContactMismatch(fmt.Sprintf(
			"Order %s found, but the contact information doesn't match. Order has email: %s, phone: %s. Please use the exact contact info from your order.",
			order.OrderNumber,
			orNone(order.Contacts.PrimaryEmail()),
			orNone(order.Contacts.PrimaryPhone())))
	}

	return &VerifyOrderResult{
		Order:  order,
		Window: service.EvaluateWindow(order.OrderDate, time.Now(), uc.windowDays),
	}, nil
}

// ResolveOrder fetches the order and, when its embedded customer reference
// lacks contact detail, merges the full customer profile. Order-level fields
// win; profile fields only fill gaps. Missing contact data never fails the
// resolution.
func (uc *VerificationUseCase) ResolveOrder(ctx context.Context, orderNumber string) (*entity.ResolvedOrder, error) {
	source, err := uc.orderSource.FindOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.NotFound(fmt.Sprintf("Order %s", orderNumber), nil)
	}

	if source.Customer != nil && source.Customer.ID != 0 {
		customer, err := uc.orderSource.GetCustomer(ctx, source.Customer.ID)
		if err != nil {
			logger.Warn("Could not fetch customer %d for order %s: %v", source.Customer.ID, orderNumber, err)
		} else if customer != nil {
			source.Customer = customer
			if source.Email == "" {
				source.Email = customer.Email
			}
			if source.ContactEmail == "" {
				source.ContactEmail = customer.Email
			}
			if source.Phone == "" {
				source.Phone = customer.Phone
			}
		}
	}

	resolved := &entity.ResolvedOrder{
		ID:           source.ID,
		OrderNumber:  source.Name,
		CustomerName: customerDisplayName(source),
		Contacts:     collectContacts(source),
		OrderDate:    source.CreatedAt,
		TotalPrice:   parsePrice(source.TotalPrice),
	}

	for _, item := range source.LineItems {
		resolved.Items = append(resolved.Items, entity.LineItem{
			ID:           item.ID,
			ProductID:    item.ProductID,
			VariantID:    item.VariantID,
			ProductName:  item.Name,
			SKU:          itemSKU(item),
			Quantity:     item.Quantity,
			Price:        parsePrice(item.Price),
			ProductImage: uc.resolveItemImage(ctx, item),
		})
	}

	return resolved, nil
}

// collectContacts gathers every available contact value in lookup order. The
// match step tries all of them, so nothing is collapsed to a single value.
func collectContacts(source *service.SourceOrder) entity.ContactCandidates {
	var c entity.ContactCandidates

	appendNonEmpty := func(dst *[]string, values ...string) {
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				*dst = append(*dst, v)
			}
		}
	}

	appendNonEmpty(&c.Emails, source.ContactEmail, source.Email)
	appendNonEmpty(&c.Phones, source.Phone)

	if source.Customer != nil {
		appendNonEmpty(&c.Emails, source.Customer.Email)
		appendNonEmpty(&c.Phones, source.Customer.Phone)
		if source.Customer.DefaultAddress != nil {
			appendNonEmpty(&c.Emails, source.Customer.DefaultAddress.Email)
			appendNonEmpty(&c.Phones, source.Customer.DefaultAddress.Phone)
		}
	}
	if source.BillingAddress != nil {
		appendNonEmpty(&c.Phones, source.BillingAddress.Phone)
	}
	if source.ShippingAddress != nil {
		appendNonEmpty(&c.Phones, source.ShippingAddress.Phone)
	}

	return c
}

// resolveItemImage walks the fallback chain: line-item property flagged as
// image, the item's attached image, the parent product's image (variant
// specific when the variant matches), then a placeholder.
func (uc *VerificationUseCase) resolveItemImage(ctx context.Context, item service.SourceLineItem) string {
	for _, prop := range item.Properties {
		if prop.Name == "_image" && prop.Value != "" {
			return prop.Value
		}
	}

	if item.Image != nil && item.Image.Src != "" {
		return item.Image.Src
	}

	if item.ProductID != 0 {
		product, err := uc.orderSource.GetProduct(ctx, item.ProductID)
		if err != nil {
			logger.Warn("Could not fetch product %d for image resolution: %v", item.ProductID, err)
		} else if product != nil {
			if src := productImage(product, item.VariantID); src != "" {
				return src
			}
		}
	}

	return "https://via.placeholder.com/100?text=" + url.QueryEscape(item.Name)
}

func productImage(product *service.SourceProduct, variantID int64) string {
	if variantID != 0 {
		for _, img := range product.Images {
			for _, vid := range img.VariantIDs {
				if vid == variantID {
					return img.Src
				}
			}
		}
	}
	if product.Image != nil && product.Image.Src != "" {
		return product.Image.Src
	}
	if len(product.Images) > 0 {
		return product.Images[0].Src
	}
	return ""
}

func customerDisplayName(source *service.SourceOrder) string {
	if source.Customer != nil {
		name := strings.TrimSpace(source.Customer.FirstName + " " + source.Customer.LastName)
		if name != "" {
			return name
		}
	}
	if source.BillingAddress != nil && source.BillingAddress.Name != "" {
		return source.BillingAddress.Name
	}
	return "Customer"
}

func itemSKU(item service.SourceLineItem) string {
	if item.SKU != "" {
		return item.SKU
	}
	if item.VariantID != 0 {
		return strconv.FormatInt(item.VariantID, 10)
	}
	return strconv.FormatInt(item.ProductID, 10)
}

func parsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return price
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
