package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/application"
	"careerhub/internal/domain/audit"
	"careerhub/internal/domain/listing"
	"careerhub/internal/domain/user"
)

type ListingService struct {
	repo         listing.Repository
	applications application.Repository
	auditLog     audit.Repository
	logger       *slog.Logger
}

func NewListingService(repo listing.Repository, applications application.Repository, auditLog audit.Repository, logger *slog.Logger) *ListingService {
	return &ListingService{repo: repo, applications: applications, auditLog: auditLog, logger: logger}
}

func (s *ListingService) Create(ctx context.Context, actor user.Actor, item listing.Listing) (*listing.Listing, error) {
	if !actor.Role.CanPost() {
		return nil, common.NewError(common.CodeForbidden, "role cannot post listings", nil)
	}
	// postedBy always comes from the authenticated actor, never the payload.
	item.PostedBy = actor.Email
	if err := validateListing(item); err != nil {
		return nil, err
	}
	if item.Status == "" {
		item.Status = listing.StatusOpen
	}
	if _, err := normalizeListingStatus(item.Status); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.logger.Info("listing created", slog.String("listing_id", created.ID.String()), slog.String("kind", string(created.Kind)), slog.String("posted_by", created.PostedBy))
	return created, nil
}

func (s *ListingService) Update(ctx context.Context, actor user.Actor, item listing.Listing) (*listing.Listing, error) {
	current, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, current.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "listing belongs to another user", nil)
	}
	item.Kind = current.Kind
	item.PostedBy = current.PostedBy
	if err := validateListing(item); err != nil {
		return nil, err
	}
	if item.Status == "" {
		item.Status = current.Status
	}
	normalized, err := normalizeListingStatus(item.Status)
	if err != nil {
		return nil, err
	}
	if current.Status == listing.StatusCompleted && normalized != listing.StatusCompleted {
		return nil, common.NewError(common.CodeValidation, "completed listing status is final", nil)
	}
	item.Status = normalized
	return s.repo.Update(ctx, item)
}

func (s *ListingService) UpdateStatus(ctx context.Context, actor user.Actor, id common.UUID, status listing.Status) (*listing.Listing, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, item.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "listing belongs to another user", nil)
	}
	normalized, err := normalizeListingStatus(status)
	if err != nil {
		return nil, err
	}
	if item.Status == listing.StatusCompleted && normalized != listing.StatusCompleted {
		return nil, common.NewError(common.CodeValidation, "completed listing status is final", nil)
	}
	item.Status = normalized
	updated, err := s.repo.Update(ctx, *item)
	if err != nil {
		return nil, err
	}
	s.logger.Info("listing status changed", slog.String("listing_id", id.String()), slog.String("status", string(normalized)))
	return updated, nil
}

// DeleteWithReason persists a deletion log entry and only then issues the
// delete. A delete failure after a successful log write leaves the entry in
// place; the orphan is logged for reconciliation rather than rolled back.
func (s *ListingService) DeleteWithReason(ctx context.Context, actor user.Actor, id common.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return common.NewValidationError("reason is required", map[string]string{"reason": "reason must not be empty"})
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(actor, item.PostedBy) {
		return common.NewError(common.CodeForbidden, "listing belongs to another user", nil)
	}
	entry := audit.Entry{
		DeletedBy:      actor.Email,
		PostedBy:       item.PostedBy,
		DeletedDate:    audit.FormatDeletedDate(time.Now()),
		EntityType:     item.Kind.EntityType(),
		DeletedContent: item.Title,
		Reason:         reason,
	}
	if _, err := s.auditLog.Create(ctx, entry); err != nil {
		return err
	}
	if err := s.applications.DeleteByListing(ctx, id); err != nil {
		s.logger.Warn("orphaned deletion log entry: application cascade failed", slog.String("listing_id", id.String()), slog.String("error", err.Error()))
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("orphaned deletion log entry: delete failed after log write", slog.String("listing_id", id.String()), slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("listing deleted", slog.String("listing_id", id.String()), slog.String("deleted_by", actor.Email), slog.String("type", entry.EntityType))
	return nil
}

func (s *ListingService) Get(ctx context.Context, id common.UUID) (*listing.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// List fetches listings of one kind, optionally scoped to an owner and status,
// then applies the title search term over the fetched set. Missing rows are an
// empty result, never an error.
func (s *ListingService) List(ctx context.Context, filter listing.Filter, searchTerm string) ([]listing.Listing, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return listing.Search(items, searchTerm), nil
}

func (s *ListingService) AddParticipant(ctx context.Context, actor user.Actor, id common.UUID, email string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(actor, item.PostedBy) {
		return common.NewError(common.CodeForbidden, "listing belongs to another user", nil)
	}
	if strings.TrimSpace(email) == "" {
		return common.NewValidationError("invalid participant", map[string]string{"email": "email is required"})
	}
	return s.repo.AddParticipant(ctx, id, email)
}

func (s *ListingService) RemoveParticipant(ctx context.Context, actor user.Actor, id common.UUID, email string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(actor, item.PostedBy) {
		return common.NewError(common.CodeForbidden, "listing belongs to another user", nil)
	}
	return s.repo.RemoveParticipant(ctx, id, email)
}

func (s *ListingService) ListParticipants(ctx context.Context, actor user.Actor, id common.UUID) ([]listing.Participant, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, item.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "listing belongs to another user", nil)
	}
	return s.repo.ListParticipants(ctx, id)
}

func validateListing(item listing.Listing) error {
	fields := map[string]string{}
	if strings.TrimSpace(item.Title) == "" {
		fields["title"] = "title is required"
	}
	if item.PostedBy == "" {
		fields["posted_by"] = "posted_by is required"
	}
	for i, entry := range item.Prerequisites {
		if strings.TrimSpace(entry) == "" {
			fields[fmt.Sprintf("prerequisites[%d]", i)] = "entry must not be empty"
		}
	}
	for i, entry := range item.Skills {
		if strings.TrimSpace(entry) == "" {
			fields[fmt.Sprintf("skills[%d]", i)] = "entry must not be empty"
		}
	}
	for i, entry := range item.Responsibilities {
		if strings.TrimSpace(entry) == "" {
			fields[fmt.Sprintf("responsibilities[%d]", i)] = "entry must not be empty"
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid listing", fields)
	}
	return nil
}

func normalizeListingStatus(status listing.Status) (listing.Status, error) {
	normalized := listing.Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch normalized {
	case listing.StatusOpen, listing.StatusClosed, listing.StatusOnHold, listing.StatusCompleted:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid listing status", map[string]string{"status": "status must be open, closed, onhold, or completed"})
	}
}

func canManage(actor user.Actor, postedBy string) bool {
	return actor.Role == user.RoleAdmin || actor.Email == postedBy
}
