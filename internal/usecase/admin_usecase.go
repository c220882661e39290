package usecase

import (
	"context"
	"time"

	"returnex/internal/domain/entity"
	"returnex/internal/domain/repository"
	"returnex/internal/domain/service"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
	"returnex/pkg/utils"
)

type AdminUseCase struct {
	requestRepo     repository.ReturnRequestRepository
	mailer          service.Mailer
	windowDays      int
	creditValidDays int
}

func NewAdminUseCase(
	requestRepo repository.ReturnRequestRepository,
	mailer service.Mailer,
	windowDays int,
	creditValidDays int,
) *AdminUseCase {
	return &AdminUseCase{
		requestRepo:     requestRepo,
		mailer:          mailer,
		windowDays:      windowDays,
		creditValidDays: creditValidDays,
	}
}

// AdminRequestView annotates a request with its return-window state for the
// back-office list. The submission date stands in for the order date, which
// is not persisted alongside the request.
type AdminRequestView struct {
	*entity.ReturnRequest
	IsWithinReturnWindow bool `json:"is_within_return_window"`
	DaysSinceOrder       int  `json:"days_since_order"`
}

type RequestDetail struct {
	Request *entity.ReturnRequest        `json:"request"`
	History []*entity.StatusHistoryEntry `json:"history"`
}

func (uc *AdminUseCase) ListRequests(ctx context.Context, status, search string, page, limit int) ([]*AdminRequestView, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)

	requests, total, err := uc.requestRepo.List(ctx, status, search, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	views := make([]*AdminRequestView, len(requests))
	for i, request := range requests {
		window := service.EvaluateWindow(request.SubmittedAt, now, uc.windowDays)
		views[i] = &AdminRequestView{
			ReturnRequest:        request,
			IsWithinReturnWindow: window.Eligible,
			DaysSinceOrder:       window.DaysElapsed,
		}
	}

	return views, total, nil
}

func (uc *AdminUseCase) GetRequestDetail(ctx context.Context, requestID string) (*RequestDetail, error) {
	request, err := uc.requestRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	history, err := uc.requestRepo.ListHistoryByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return &RequestDetail{Request: request, History: history}, nil
}

// UpdateStatus moves a request to a new status. Transitions are not policed:
// the admin picks the next label. Approving a Return mints store credit, once
// per request, persisted in the same write as the status change. Notification
// is optional and never fails the update.
func (uc *AdminUseCase) UpdateStatus(ctx context.Context, requestID, newStatus, notes string, notifyCustomer bool, adminEmail string) (*entity.ReturnRequest, error) {
	if !validStatus(newStatus) {
		return nil, errors.BadRequest("Invalid status", nil)
	}

	request, err := uc.requestRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	oldStatus := request.Status

	request.Status = newStatus
	if notes != "" {
		request.AdminNotes = notes
	}

	minted := false
	if newStatus == entity.StatusApproved &&
		request.ActionType == entity.ActionReturn &&
		!request.HasStoreCredit() {
		expiry := time.Now().AddDate(0, 0, uc.creditValidDays)
		request.StoreCreditAmount = request.ProductPrice
		request.StoreCreditCode = service.GenerateCode(service.StoreCreditPrefix)
		request.StoreCreditStatus = entity.CodeStatusActive
		request.StoreCreditExpiry = &expiry
		minted = true
	}

	if err := uc.requestRepo.UpdateStatus(ctx, request); err != nil {
		return nil, err
	}

	if err := uc.requestRepo.CreateHistory(ctx, &entity.StatusHistoryEntry{
		RequestID: requestID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: adminEmail,
		ChangedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	updated := request
	if minted || notifyCustomer {
		// Re-read so the store-credit email carries the code that actually
		// won the conditional write, not the one minted above.
		fresh, err := uc.requestRepo.GetByRequestID(ctx, requestID)
		if err != nil {
			logger.Warn("Could not re-read request %s after status update: %v", requestID, err)
		} else {
			updated = fresh
		}
	}

	if notifyCustomer && updated.CustomerEmail != "" {
		subject, body := statusEmail(updated, notes)
		uc.notify(updated.RequestID, updated.CustomerEmail, subject, body)
	}

	return updated, nil
}

func (uc *AdminUseCase) Stats(ctx context.Context) (map[string]int64, error) {
	counts, err := uc.requestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	return map[string]int64{
		"total":      total,
		"pending":    counts[entity.StatusPending],
		"inProgress": counts[entity.StatusInProgress],
		"approved":   counts[entity.StatusApproved],
		"rejected":   counts[entity.StatusRejected],
		"completed":  counts[entity.StatusCompleted],
	}, nil
}

func (uc *AdminUseCase) notify(requestID, to, subject, body string) {
	go func() {
		if err := uc.mailer.Send(context.Background(), to, subject, body); err != nil {
			logger.LogNotificationError(requestID, to, err)
		}
	}()
}

func validStatus(status string) bool {
	switch status {
	case entity.StatusPending, entity.StatusInProgress, entity.StatusApproved,
		entity.StatusRejected, entity.StatusCompleted:
		return true
	}
	return false
}
