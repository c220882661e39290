package usecase

import (
	"context"
	"sync"

	"returnex/internal/domain/entity"
	"returnex/pkg/errors"
)

// fakeRequestRepo is an in-memory stand-in that mirrors the mint-once guard
// of the real store: UpdateStatus keeps the first persisted store-credit code.
type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.ReturnRequest
	history  []*entity.StatusHistoryEntry
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*entity.ReturnRequest{}}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *entity.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[request.RequestID]; ok {
		return errors.BadRequest("A request with this ID already exists", nil)
	}
	clone := *request
	r.requests[request.RequestID] = &clone
	return nil
}

func (r *fakeRequestRepo) GetByRequestID(ctx context.Context, requestID string) (*entity.ReturnRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[requestID]
	if !ok {
		return nil, errors.NotFound("Return request", nil)
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, request *entity.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[request.RequestID]
	if !ok {
		return errors.NotFound("Return request", nil)
	}
	if stored.HasStoreCredit() {
		request.StoreCreditAmount = stored.StoreCreditAmount
		request.StoreCreditCode = stored.StoreCreditCode
		request.StoreCreditStatus = stored.StoreCreditStatus
		request.StoreCreditExpiry = stored.StoreCreditExpiry
	}
	clone := *request
	r.requests[request.RequestID] = &clone
	return nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, request *entity.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *request
	r.requests[request.RequestID] = &clone
	return nil
}

func (r *fakeRequestRepo) List(ctx context.Context, status, search string, limit, offset int) ([]*entity.ReturnRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReturnRequest
	for _, stored := range r.requests {
		if status != "" && status != "All" && stored.Status != status {
			continue
		}
		clone := *stored
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) CreateHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.history = append(r.history, &clone)
	return nil
}

func (r *fakeRequestRepo) ListHistoryByRequestID(ctx context.Context, requestID string) ([]*entity.StatusHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StatusHistoryEntry
	for _, entry := range r.history {
		if entry.RequestID == requestID {
			clone := *entry
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, stored := range r.requests {
		counts[stored.Status]++
	}
	return counts, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
