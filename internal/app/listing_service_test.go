package app

import (
	"context"
	"errors"
	"testing"

	"careerhub/internal/common"
	"careerhub/internal/domain/listing"
	"careerhub/internal/domain/user"
)

func newListingService(log *callLog) (*ListingService, *fakeListingRepo, *fakeApplicationRepo, *fakeAuditRepo) {
	listings := newFakeListingRepo(log)
	applications := newFakeApplicationRepo(log)
	audits := newFakeAuditRepo(log)
	return NewListingService(listings, applications, audits, testLogger()), listings, applications, audits
}

func TestListingServiceCreate_SetsOwnerFromActor(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	actor := user.Actor{Email: "mentor@example.com", Role: user.RoleMentor}

	created, err := service.Create(context.Background(), actor, listing.Listing{
		Kind:     listing.KindCourse,
		Title:    "Intro to X",
		PostedBy: "spoofed@example.com",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.PostedBy != "mentor@example.com" {
		t.Fatalf("expected posted_by from token, got %q", created.PostedBy)
	}
	if created.Status != listing.StatusOpen {
		t.Fatalf("expected default open status, got %q", created.Status)
	}
}

func TestListingServiceCreate_RequiresTitle(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	actor := user.Actor{Email: "mentor@example.com", Role: user.RoleMentor}

	_, err := service.Create(context.Background(), actor, listing.Listing{Kind: listing.KindCourse})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListingServiceCreate_MemberForbidden(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	actor := user.Actor{Email: "member@example.com", Role: user.RoleMember}

	_, err := service.Create(context.Background(), actor, listing.Listing{Kind: listing.KindCourse, Title: "Intro"})
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestListingServiceUpdate_ForbiddenForNonOwner(t *testing.T) {
	service, listings, _, _ := newListingService(&callLog{})
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindCourse, Title: "Intro"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	other := user.Actor{Email: "other@example.com", Role: user.RoleMentor}
	created.Title = "Hijacked"
	_, err = service.Update(context.Background(), other, *created)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	stored, _ := listings.GetByID(context.Background(), created.ID)
	if stored.Title != "Intro" {
		t.Fatalf("expected title unchanged, got %q", stored.Title)
	}
}

func TestListingServiceUpdate_AdminBypassesOwnership(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindCourse, Title: "Intro"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	admin := user.Actor{Email: "admin@example.com", Role: user.RoleAdmin}
	created.Title = "Intro, revised"
	updated, err := service.Update(context.Background(), admin, *created)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.PostedBy != "owner@example.com" {
		t.Fatalf("expected posted_by immutable, got %q", updated.PostedBy)
	}
}

func TestListingServiceUpdateStatus_CompletedIsTerminal(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindMentorship, Title: "Mentoring"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), owner, created.ID, listing.StatusCompleted); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err = service.UpdateStatus(context.Background(), owner, created.ID, listing.StatusOpen)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for reopening completed listing, got %v", err)
	}
}

func TestListingServiceUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindCourse, Title: "Intro"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err = service.UpdateStatus(context.Background(), owner, created.ID, "archived")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListingServiceDeleteWithReason_LogsBeforeDelete(t *testing.T) {
	log := &callLog{}
	service, _, _, audits := newListingService(log)
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindMentorship, Title: "Algorithms mentoring"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := service.DeleteWithReason(context.Background(), owner, created.ID, "spam"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	calls := log.snapshot()
	auditIdx, deleteIdx := -1, -1
	for i, call := range calls {
		switch call {
		case "audit.create":
			auditIdx = i
		case "listing.delete":
			deleteIdx = i
		}
	}
	if auditIdx == -1 || deleteIdx == -1 {
		t.Fatalf("expected both audit and delete calls, got %v", calls)
	}
	if auditIdx > deleteIdx {
		t.Fatalf("expected audit write before delete, got %v", calls)
	}

	if len(audits.entries) != 1 {
		t.Fatalf("expected one deletion log entry, got %d", len(audits.entries))
	}
	entry := audits.entries[0]
	if entry.EntityType != "Mentorship" {
		t.Fatalf("expected entity type Mentorship, got %q", entry.EntityType)
	}
	if entry.DeletedContent != "Algorithms mentoring" {
		t.Fatalf("expected deleted content to carry the title, got %q", entry.DeletedContent)
	}
	if entry.Reason != "spam" {
		t.Fatalf("expected reason spam, got %q", entry.Reason)
	}
	if entry.DeletedDate == "" {
		t.Fatal("expected deleted date to be captured")
	}
}

func TestListingServiceDeleteWithReason_RequiresReason(t *testing.T) {
	log := &callLog{}
	service, _, _, _ := newListingService(log)
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindCourse, Title: "Intro"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	err = service.DeleteWithReason(context.Background(), owner, created.ID, "  ")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, call := range log.snapshot() {
		if call == "audit.create" || call == "listing.delete" {
			t.Fatalf("expected no audit or delete calls, got %v", log.snapshot())
		}
	}
}

func TestListingServiceDeleteWithReason_OrphanedLogOnDeleteFailure(t *testing.T) {
	log := &callLog{}
	listings := newFakeListingRepo(log)
	applications := newFakeApplicationRepo(log)
	audits := newFakeAuditRepo(log)
	service := NewListingService(listings, applications, audits, testLogger())
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindCourse, Title: "Intro"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	listings.deleteErr = errors.New("connection reset")

	err = service.DeleteWithReason(context.Background(), owner, created.ID, "cleanup")
	if err == nil {
		t.Fatal("expected delete failure to propagate")
	}
	// The log entry stays even though the delete failed; there is no rollback.
	if len(audits.entries) != 1 {
		t.Fatalf("expected orphaned deletion log entry to remain, got %d", len(audits.entries))
	}
}

func TestListingServiceDeleteWithReason_CascadesApplications(t *testing.T) {
	log := &callLog{}
	service, _, applications, _ := newListingService(log)
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	created, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindInternship, Title: "Summer internship"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := applications.Create(context.Background(), applicationFor(created.ID, "a@example.com")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := service.DeleteWithReason(context.Background(), owner, created.ID, "position filled"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	remaining, _ := applications.ListByListing(context.Background(), created.ID)
	if len(remaining) != 0 {
		t.Fatalf("expected applications cascade, got %d remaining", len(remaining))
	}
}

func TestListingServiceList_AppliesSearchTerm(t *testing.T) {
	service, _, _, _ := newListingService(&callLog{})
	owner := user.Actor{Email: "owner@example.com", Role: user.RoleMentor}
	titles := []string{"Intro to Go", "Advanced Go", "Rust basics"}
	for _, title := range titles {
		if _, err := service.Create(context.Background(), owner, listing.Listing{Kind: listing.KindCourse, Title: title}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	items, err := service.List(context.Background(), listing.Filter{Kind: listing.KindCourse}, "go")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(items))
	}

	items, err = service.List(context.Background(), listing.Filter{Kind: listing.KindCourse}, "cobol")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no matches, got %d", len(items))
	}
}
