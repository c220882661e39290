package usecase

import (
	"fmt"
	"strings"

	"returnex/internal/domain/entity"
)

// Email composition for customer notifications. Templates mirror the portal's
// transactional tone; the status-update set has distinct bodies per outcome.

func submissionEmail(request *entity.ReturnRequest) (subject, body string) {
	subject = fmt.Sprintf("%s Request Submitted - %s", request.ActionType, request.RequestID)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your %s Request Has Been Submitted</h2>", request.ActionType)
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	fmt.Fprintf(&b, "<p>We have received your %s request.</p>", strings.ToLower(request.ActionType))
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	fmt.Fprintf(&b, "<p><strong>Reason:</strong> %s</p>", request.Reason)

	if request.DiscountCode != "" {
		fmt.Fprintf(&b, "<p><strong>Your discount code:</strong> %s</p>", request.DiscountCode)
		fmt.Fprintf(&b, "<p>Worth %.2f, valid for 90 days. Use it on your next order.</p>", request.RefundAmount)
	}

	b.WriteString("<p>We will review your request and contact you shortly.</p>")
	b.WriteString("<p>Thank you for your patience!</p>")

	return subject, b.String()
}

func statusEmail(request *entity.ReturnRequest, notes string) (subject, body string) {
	switch request.Status {
	case entity.StatusApproved:
		if request.ActionType == entity.ActionReturn {
			return storeCreditEmail(request, notes)
		}
		return exchangeApprovedEmail(request, notes)
	case entity.StatusRejected:
		return rejectedEmail(request, notes)
	case entity.StatusInProgress:
		return inProgressEmail(request, notes)
	case entity.StatusCompleted:
		return completedEmail(request, notes)
	default:
		return genericStatusEmail(request, notes)
	}
}

// storeCreditEmail must be composed from the persisted record so the code in
// the email is the code that was actually stored.
func storeCreditEmail(request *entity.ReturnRequest, notes string) (string, string) {
	subject := fmt.Sprintf("Return Approved - Store Credit Generated - %s", request.RequestID)

	var b strings.Builder
	b.WriteString("<h2>Your Return Request Has Been Approved</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	b.WriteString("<p>Great news! Your return request has been approved.</p>")
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	fmt.Fprintf(&b, "<p><strong>Product:</strong> %s</p>", request.ProductName)
	appendNotes(&b, notes)

	if request.StoreCreditAmount > 0 && request.StoreCreditCode != "" {
		b.WriteString("<h3>Your Store Credit is Ready!</h3>")
		fmt.Fprintf(&b, "<p><strong>Store Credit Code:</strong> %s</p>", request.StoreCreditCode)
		fmt.Fprintf(&b, "<p><strong>Credit Amount:</strong> %.2f</p>", request.StoreCreditAmount)
		if request.StoreCreditExpiry != nil {
			fmt.Fprintf(&b, "<p>Valid until %s (90 days)</p>", request.StoreCreditExpiry.Format("January 2, 2006"))
		}
		b.WriteString("<p>Use this store credit code during checkout on your next purchase!</p>")
	}

	b.WriteString("<p>We will process your return shortly and keep you updated.</p>")
	return subject, b.String()
}

func exchangeApprovedEmail(request *entity.ReturnRequest, notes string) (string, string) {
	subject := fmt.Sprintf("Exchange Request Approved - %s", request.RequestID)

	var b strings.Builder
	b.WriteString("<h2>Your Exchange Request Has Been Approved</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	b.WriteString("<p>Great news! Your exchange request has been approved.</p>")
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	fmt.Fprintf(&b, "<p><strong>Original Product:</strong> %s</p>", request.ProductName)
	if request.ExchangeProductName != "" {
		fmt.Fprintf(&b, "<p><strong>Exchange For:</strong> %s</p>", request.ExchangeProductName)
	}
	appendNotes(&b, notes)
	b.WriteString("<p>We will process your exchange shortly and keep you updated.</p>")
	return subject, b.String()
}

func rejectedEmail(request *entity.ReturnRequest, notes string) (string, string) {
	subject := fmt.Sprintf("%s Request Update - %s", request.ActionType, request.RequestID)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your %s Request Update</h2>", request.ActionType)
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	fmt.Fprintf(&b, "<p>We have reviewed your %s request.</p>", strings.ToLower(request.ActionType))
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	fmt.Fprintf(&b, "<p><strong>Status:</strong> %s</p>", request.Status)
	if notes != "" {
		fmt.Fprintf(&b, "<p><strong>Reason:</strong> %s</p>", notes)
	}
	b.WriteString("<p>If you have any questions, please contact our customer service.</p>")
	return subject, b.String()
}

func inProgressEmail(request *entity.ReturnRequest, notes string) (string, string) {
	subject := fmt.Sprintf("%s Request Update - %s", request.ActionType, request.RequestID)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your %s Request is Being Processed</h2>", request.ActionType)
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	fmt.Fprintf(&b, "<p>Your %s request is now being processed.</p>", strings.ToLower(request.ActionType))
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	if notes != "" {
		fmt.Fprintf(&b, "<p><strong>Update:</strong> %s</p>", notes)
	}
	b.WriteString("<p>We'll notify you once it's completed.</p>")
	return subject, b.String()
}

func completedEmail(request *entity.ReturnRequest, notes string) (string, string) {
	subject := fmt.Sprintf("%s Request Update - %s", request.ActionType, request.RequestID)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your %s Request is Complete</h2>", request.ActionType)
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	fmt.Fprintf(&b, "<p>Your %s request has been completed successfully!</p>", strings.ToLower(request.ActionType))
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	if notes != "" {
		fmt.Fprintf(&b, "<p><strong>Details:</strong> %s</p>", notes)
	}
	b.WriteString("<p>Thank you for your patience!</p>")
	return subject, b.String()
}

func genericStatusEmail(request *entity.ReturnRequest, notes string) (string, string) {
	subject := fmt.Sprintf("%s Request Update - %s", request.ActionType, request.RequestID)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your %s Request Update</h2>", request.ActionType)
	fmt.Fprintf(&b, "<p>Dear %s,</p>", request.CustomerName)
	fmt.Fprintf(&b, "<p>There's an update on your %s request.</p>", strings.ToLower(request.ActionType))
	fmt.Fprintf(&b, "<p><strong>Request ID:</strong> %s</p>", request.RequestID)
	fmt.Fprintf(&b, "<p><strong>New Status:</strong> %s</p>", request.Status)
	appendNotes(&b, notes)
	return subject, b.String()
}

func appendNotes(b *strings.Builder, notes string) {
	if notes != "" {
		fmt.Fprintf(b, "<p><strong>Notes:</strong> %s</p>", notes)
	}
}
