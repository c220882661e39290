package service

import (
	"returnex/internal/domain/entity"
)

type SettlementInput struct {
	ActionType           string
	OriginalPrice        float64
	ExchangePrice        *float64
	CreditOption         string
	PaymentTransactionID string
}

type Settlement struct {
	PriceDifference   float64
	RefundAmount      float64
	PaymentStatus     string
	NeedsDiscountCode bool
}

// ComputeSettlement resolves the financial outcome of a submission without
// performing any I/O. Effects (persist, mint code, notify) are sequenced by
// the caller.
//
// A negative price difference means credit is owed: the discount-code path is
// taken only when the customer picked the next-order option; apply-now records
// the credit with no code. A positive difference means extra payment is owed;
// submission never blocks on it, it only records self-reported evidence.
func ComputeSettlement(in SettlementInput) Settlement {
	if in.ActionType != entity.ActionExchange || in.ExchangePrice == nil {
		return Settlement{PaymentStatus: entity.PaymentNotRequired}
	}

	diff := *in.ExchangePrice - in.OriginalPrice

	s := Settlement{
		PriceDifference: diff,
		PaymentStatus:   entity.PaymentNotRequired,
	}

	switch {
	case diff < 0:
		s.RefundAmount = -diff
		s.NeedsDiscountCode = in.CreditOption == entity.CreditNextOrder
	case diff > 0:
		if in.PaymentTransactionID != "" {
			s.PaymentStatus = entity.PaymentPaid
		} else {
			s.PaymentStatus = entity.PaymentPending
		}
	}

	return s
}
