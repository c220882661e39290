package repository

import (
	"context"

	"returnex/internal/domain/entity"
)

type ReturnRequestRepository interface {
	Create(ctx context.Context, request *entity.ReturnRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*entity.ReturnRequest, error)

	// UpdateStatus persists status, admin notes, updatedAt and, when the request
	// carries freshly minted store-credit fields, writes them only if no code is
	// already stored. The guard runs inside a transaction so concurrent approvals
	// cannot mint two codes for one request; when the stored document already has
	// a code, the stored credit fields are copied back onto request.
	UpdateStatus(ctx context.Context, request *entity.ReturnRequest) error

	Update(ctx context.Context, request *entity.ReturnRequest) error

	// List filters by status ("" or "All" means any) and a free-text search across
	// request id, customer name, order number and product name, newest first.
	List(ctx context.Context, status, search string, limit, offset int) ([]*entity.ReturnRequest, int64, error)

	CreateHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error
	ListHistoryByRequestID(ctx context.Context, requestID string) ([]*entity.StatusHistoryEntry, error)

	CountByStatus(ctx context.Context) (map[string]int64, error)
}
