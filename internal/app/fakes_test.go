package app

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/application"
	"careerhub/internal/domain/audit"
	"careerhub/internal/domain/listing"
	"careerhub/internal/domain/review"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func applicationFor(listingID common.UUID, email string) application.Application {
	return application.Application{
		ListingID:      listingID,
		ApplicantEmail: email,
		ApplicantName:  "Applicant",
		Status:         application.StatusPending,
	}
}

// callLog records repository calls across fakes so ordering guarantees can be
// asserted, e.g. that the deletion log write precedes the delete.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeListingRepo struct {
	mu        sync.Mutex
	items     map[common.UUID]listing.Listing
	members   map[common.UUID][]listing.Participant
	log       *callLog
	deleteErr error
}

func newFakeListingRepo(log *callLog) *fakeListingRepo {
	return &fakeListingRepo{
		items:   make(map[common.UUID]listing.Listing),
		members: make(map[common.UUID][]listing.Participant),
		log:     log,
	}
}

func (r *fakeListingRepo) Create(ctx context.Context, item listing.Listing) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = common.NewUUID()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = item
	r.log.record("listing.create")
	return &item, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, item listing.Listing) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	item.UpdatedAt = time.Now().UTC()
	r.items[item.ID] = item
	r.log.record("listing.update")
	return &item, nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id common.UUID) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	return &item, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter listing.Filter) ([]listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []listing.Listing{}
	for _, item := range r.items {
		if item.Kind != filter.Kind {
			continue
		}
		if filter.PostedBy != "" && item.PostedBy != filter.PostedBy {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.record("listing.delete")
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeListingRepo) AddParticipant(ctx context.Context, id common.UUID, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.members[id] {
		if p.Email == email {
			return nil
		}
	}
	r.members[id] = append(r.members[id], listing.Participant{ListingID: id, Email: email, JoinedAt: time.Now().UTC()})
	return nil
}

func (r *fakeListingRepo) RemoveParticipant(ctx context.Context, id common.UUID, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	members := r.members[id]
	for i, p := range members {
		if p.Email == email {
			r.members[id] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "participant not found", sql.ErrNoRows)
}

func (r *fakeListingRepo) ListParticipants(ctx context.Context, id common.UUID) ([]listing.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]listing.Participant(nil), r.members[id]...), nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items map[common.UUID]application.Application
	log   *callLog
}

func newFakeApplicationRepo(log *callLog) *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[common.UUID]application.Application), log: log}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	r.items[app.ID] = app
	r.log.record("application.create")
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return &app, nil
}

func (r *fakeApplicationRepo) ListByListing(ctx context.Context, listingID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []application.Application{}
	for _, app := range r.items {
		if app.ListingID == listingID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, email string) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []application.Application{}
	for _, app := range r.items {
		if app.ApplicantEmail == email {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) FindByListingAndApplicant(ctx context.Context, listingID common.UUID, email string) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.items {
		if app.ListingID == listingID && app.ApplicantEmail == email {
			return &app, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	r.items[id] = app
	r.log.record("application.update_status")
	return &app, nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.record("application.delete")
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeApplicationRepo) DeleteByListing(ctx context.Context, listingID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.record("application.delete_by_listing")
	for id, app := range r.items {
		if app.ListingID == listingID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeAuditRepo struct {
	mu        sync.Mutex
	entries   []audit.Entry
	log       *callLog
	createErr error
}

func newFakeAuditRepo(log *callLog) *fakeAuditRepo {
	return &fakeAuditRepo{log: log}
}

func (r *fakeAuditRepo) Create(ctx context.Context, entry audit.Entry) (*audit.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.record("audit.create")
	if r.createErr != nil {
		return nil, r.createErr
	}
	entry.ID = common.NewUUID()
	entry.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, entry)
	return &entry, nil
}

func (r *fakeAuditRepo) CreateBatch(ctx context.Context, entries []audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.record("audit.create_batch")
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, entityType string, limit, offset int) ([]audit.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []audit.Entry{}
	for _, entry := range r.entries {
		if entityType == "" || entry.EntityType == entityType {
			items = append(items, entry)
		}
	}
	return items, nil
}

type fakeReviewRepo struct {
	mu    sync.Mutex
	items map[common.UUID]review.Review
	log   *callLog
}

func newFakeReviewRepo(log *callLog) *fakeReviewRepo {
	return &fakeReviewRepo{items: make(map[common.UUID]review.Review), log: log}
}

func (r *fakeReviewRepo) Create(ctx context.Context, item review.Review) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	r.items[item.ID] = item
	return &item, nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id common.UUID) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "review not found", sql.ErrNoRows)
	}
	return &item, nil
}

func (r *fakeReviewRepo) ListByListing(ctx context.Context, listingID common.UUID) ([]review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []review.Review{}
	for _, item := range r.items {
		if item.ListingID == listingID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.record("review.delete")
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "review not found", sql.ErrNoRows)
	}
	delete(r.items, id)
	return nil
}
