package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"returnex/internal/domain/entity"
	"returnex/internal/domain/repository"
	"returnex/pkg/errors"
)

type firestoreReturnRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreReturnRequestRepository(client *firestore.Client) repository.ReturnRequestRepository {
	return &firestoreReturnRequestRepository{
		client: client,
	}
}

func (r *firestoreReturnRequestRepository) requests() *firestore.CollectionRef {
	return r.client.Collection("return_requests")
}

func (r *firestoreReturnRequestRepository) history() *firestore.CollectionRef {
	return r.client.Collection("status_history")
}

func (r *firestoreReturnRequestRepository) Create(ctx context.Context, request *entity.ReturnRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.SubmittedAt.IsZero() {
		request.SubmittedAt = time.Now()
	}

	// Documents are keyed by the customer-facing request identifier so the
	// approval transaction can address them directly.
	_, err := r.requests().Doc(request.RequestID).Create(ctx, request)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Internal("Request identifier collision", err)
		}
		return errors.Internal("Failed to create return request", err)
	}

	return nil
}

func (r *firestoreReturnRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.ReturnRequest, error) {
	doc, err := r.requests().Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get return request", err)
	}

	var request entity.ReturnRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse return request data", err)
	}

	return &request, nil
}

func (r *firestoreReturnRequestRepository) Update(ctx context.Context, request *entity.ReturnRequest) error {
	now := time.Now()
	request.UpdatedAt = &now

	_, err := r.requests().Doc(request.RequestID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to update return request", err)
	}

	return nil
}

func (r *firestoreReturnRequestRepository) UpdateStatus(ctx context.Context, request *entity.ReturnRequest) error {
	now := time.Now()
	request.UpdatedAt = &now

	docRef := r.requests().Doc(request.RequestID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var stored entity.ReturnRequest
		if err := doc.DataTo(&stored); err != nil {
			return err
		}

		// One active store credit per request: if a code was already
		// persisted by an earlier approval, keep it and discard whatever
		// the caller minted.
		if stored.HasStoreCredit() {
			request.StoreCreditAmount = stored.StoreCreditAmount
			request.StoreCreditCode = stored.StoreCreditCode
			request.StoreCreditStatus = stored.StoreCreditStatus
			request.StoreCreditExpiry = stored.StoreCreditExpiry
		}

		return tx.Set(docRef, request)
	})

	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Request", err)
		}
		return errors.Internal("Failed to update request status", err)
	}

	return nil
}

func (r *firestoreReturnRequestRepository) List(ctx context.Context, statusFilter, search string, limit, offset int) ([]*entity.ReturnRequest, int64, error) {
	query := r.requests().Query.OrderBy("submittedAt", firestore.Desc)

	if statusFilter != "" && statusFilter != "All" {
		query = query.Where("status", "==", statusFilter)
	}

	// Firestore has no LIKE; fetch the filtered set and match in memory.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list return requests", err)
	}

	var matched []*entity.ReturnRequest
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, doc := range docs {
		var request entity.ReturnRequest
		if err := doc.DataTo(&request); err != nil {
			continue
		}

		if needle != "" && !matchesSearch(&request, needle) {
			continue
		}
		matched = append(matched, &request)
	}

	total := int64(len(matched))

	start := offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func matchesSearch(request *entity.ReturnRequest, needle string) bool {
	for _, field := range []string{
		request.RequestID,
		request.CustomerName,
		request.OrderNumber,
		request.ProductName,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (r *firestoreReturnRequestRepository) CreateHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ChangedAt.IsZero() {
		entry.ChangedAt = time.Now()
	}

	_, err := r.history().Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to create status history entry", err)
	}

	return nil
}

func (r *firestoreReturnRequestRepository) ListHistoryByRequestID(ctx context.Context, requestID string) ([]*entity.StatusHistoryEntry, error) {
	query := r.history().
		Where("requestId", "==", requestID).
		OrderBy("changedAt", firestore.Desc)

	iter := query.Documents(ctx)
	var entries []*entity.StatusHistoryEntry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate status history", err)
		}

		var entry entity.StatusHistoryEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse status history data", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *firestoreReturnRequestRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	docs, err := r.requests().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to count return requests", err)
	}

	counts := map[string]int64{
		entity.StatusPending:    0,
		entity.StatusInProgress: 0,
		entity.StatusApproved:   0,
		entity.StatusRejected:   0,
		entity.StatusCompleted:  0,
	}

	for _, doc := range docs {
		var request entity.ReturnRequest
		if err := doc.DataTo(&request); err != nil {
			continue
		}
		counts[request.Status]++
	}

	return counts, nil
}
