package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/audit"
	"careerhub/internal/domain/listing"
	"careerhub/internal/domain/review"
	"careerhub/internal/domain/user"
)

type ReviewService struct {
	repo     review.Repository
	listings listing.Repository
	auditLog audit.Repository
	logger   *slog.Logger
}

func NewReviewService(repo review.Repository, listings listing.Repository, auditLog audit.Repository, logger *slog.Logger) *ReviewService {
	return &ReviewService{repo: repo, listings: listings, auditLog: auditLog, logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, actor user.Actor, listingID common.UUID, item review.Review) (*review.Review, error) {
	parent, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if parent.Kind != listing.KindMentorship {
		return nil, common.NewError(common.CodeValidation, "reviews are only supported on mentorship listings", nil)
	}
	if item.Rating < 1 || item.Rating > 5 {
		return nil, common.NewValidationError("invalid review", map[string]string{"rating": "rating must be between 1 and 5"})
	}
	item.ListingID = listingID
	item.AuthorEmail = actor.Email
	return s.repo.Create(ctx, item)
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID common.UUID) ([]review.Review, error) {
	return s.repo.ListByListing(ctx, listingID)
}

// DeleteWithReason writes the deletion log entry before issuing the delete,
// the same contract as listings and applications.
func (s *ReviewService) DeleteWithReason(ctx context.Context, actor user.Actor, id common.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return common.NewValidationError("reason is required", map[string]string{"reason": "reason must not be empty"})
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	parent, err := s.listings.GetByID(ctx, item.ListingID)
	if err != nil {
		return err
	}
	if !canManage(actor, parent.PostedBy) {
		return common.NewError(common.CodeForbidden, "review belongs to another user's listing", nil)
	}
	entry := audit.Entry{
		DeletedBy:      actor.Email,
		PostedBy:       parent.PostedBy,
		DeletedDate:    audit.FormatDeletedDate(time.Now()),
		EntityType:     "Review",
		DeletedContent: item.Comment,
		Reason:         reason,
	}
	if _, err := s.auditLog.Create(ctx, entry); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("orphaned deletion log entry: delete failed after log write", slog.String("review_id", id.String()), slog.String("error", err.Error()))
		return err
	}
	return nil
}
