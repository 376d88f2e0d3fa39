package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/application"
	"careerhub/internal/domain/audit"
	"careerhub/internal/domain/listing"
	"careerhub/internal/domain/user"
)

// ModerationService manages the applications nested under a listing: applying,
// the accept/reject/revert workflow, and audited deletion.
type ModerationService struct {
	repo     application.Repository
	listings listing.Repository
	auditLog audit.Repository
	logger   *slog.Logger
}

func NewModerationService(repo application.Repository, listings listing.Repository, auditLog audit.Repository, logger *slog.Logger) *ModerationService {
	return &ModerationService{repo: repo, listings: listings, auditLog: auditLog, logger: logger}
}

func (s *ModerationService) Apply(ctx context.Context, actor user.Actor, listingID common.UUID, app application.Application) (*application.Application, error) {
	parent, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if parent.Status != listing.StatusOpen {
		return nil, common.NewError(common.CodeValidation, "listing is not open for applications", nil)
	}
	if strings.TrimSpace(app.ApplicantName) == "" {
		return nil, common.NewValidationError("invalid application", map[string]string{"applicant_name": "applicant_name is required"})
	}
	if _, err := s.repo.FindByListingAndApplicant(ctx, listingID, actor.Email); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	app.ListingID = listingID
	app.ApplicantEmail = actor.Email
	app.Status = application.StatusPending
	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application created", slog.String("application_id", created.ID.String()), slog.String("listing_id", listingID.String()))
	return created, nil
}

// UpdateStatus drives the pending/accepted/rejected machine. Setting the
// current status again is an idempotent no-op. No transition is permitted
// while the parent listing is completed.
func (s *ModerationService) UpdateStatus(ctx context.Context, actor user.Actor, id common.UUID, status application.Status) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	parent, err := s.listings.GetByID(ctx, app.ListingID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, parent.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another user's listing", nil)
	}
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch next {
	case application.StatusPending, application.StatusAccepted, application.StatusRejected:
	default:
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, accepted, or rejected"})
	}
	if parent.Status == listing.StatusCompleted {
		return nil, common.NewError(common.CodeValidation, "listing is completed; applications are locked", nil)
	}
	current := application.Normalize(app.Status)
	if next == current {
		return app, nil
	}
	if !application.IsAllowedTransition(current, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application status changed", slog.String("application_id", id.String()), slog.String("from", string(current)), slog.String("to", string(next)))
	return updated, nil
}

// ListPage returns one page of a listing's applications together with
// per-status counts computed over the full unfiltered set.
type ApplicationPage struct {
	Items     []application.Application `json:"items"`
	Counts    application.Counts        `json:"counts"`
	Page      int                       `json:"page"`
	PageSize  int                       `json:"page_size"`
	PageCount int                       `json:"page_count"`
}

func (s *ModerationService) ListPage(ctx context.Context, actor user.Actor, listingID common.UUID, statuses []application.Status, page, pageSize int) (*ApplicationPage, error) {
	parent, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, parent.PostedBy) {
		return nil, common.NewError(common.CodeForbidden, "application list belongs to another user's listing", nil)
	}
	all, err := s.repo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	filtered := application.FilterByStatus(all, statuses)
	return &ApplicationPage{
		Items:     application.Page(filtered, page, pageSize),
		Counts:    application.CountByStatus(all),
		Page:      page,
		PageSize:  pageSize,
		PageCount: application.PageCount(len(filtered), pageSize),
	}, nil
}

func (s *ModerationService) ListByApplicant(ctx context.Context, actor user.Actor) ([]application.Application, error) {
	return s.repo.ListByApplicant(ctx, actor.Email)
}

// DeleteWithReason mirrors the listing delete contract: the deletion log write
// must resolve before the delete is issued.
func (s *ModerationService) DeleteWithReason(ctx context.Context, actor user.Actor, id common.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return common.NewValidationError("reason is required", map[string]string{"reason": "reason must not be empty"})
	}
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	parent, err := s.listings.GetByID(ctx, app.ListingID)
	if err != nil {
		return err
	}
	if !canManage(actor, parent.PostedBy) {
		return common.NewError(common.CodeForbidden, "application belongs to another user's listing", nil)
	}
	entry := audit.Entry{
		DeletedBy:      actor.Email,
		PostedBy:       parent.PostedBy,
		DeletedDate:    audit.FormatDeletedDate(time.Now()),
		EntityType:     "Application",
		DeletedContent: app.ApplicantName,
		Reason:         reason,
	}
	if _, err := s.auditLog.Create(ctx, entry); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("orphaned deletion log entry: delete failed after log write", slog.String("application_id", id.String()), slog.String("error", err.Error()))
		return err
	}
	return nil
}
