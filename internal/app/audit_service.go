package app

import (
	"context"
	"fmt"
	"strings"

	"careerhub/internal/common"
	"careerhub/internal/domain/audit"
	"careerhub/internal/domain/user"
)

type AuditService struct {
	repo audit.Repository
}

func NewAuditService(repo audit.Repository) *AuditService {
	return &AuditService{repo: repo}
}

// RecordBatch accepts the array payload shape the delete-log endpoint has
// always taken. Every entry must carry a non-empty reason.
func (s *AuditService) RecordBatch(ctx context.Context, actor user.Actor, entries []audit.Entry) error {
	if actor.Role != user.RoleAdmin {
		return common.NewError(common.CodeForbidden, "only admins may write the deletion log directly", nil)
	}
	if len(entries) == 0 {
		return common.NewValidationError("invalid payload", map[string]string{"entries": "at least one entry is required"})
	}
	fields := map[string]string{}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Reason) == "" {
			fields[fmt.Sprintf("entries[%d].reason", i)] = "reason must not be empty"
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid payload", fields)
	}
	return s.repo.CreateBatch(ctx, entries)
}

func (s *AuditService) List(ctx context.Context, actor user.Actor, entityType string, limit, offset int) ([]audit.Entry, error) {
	if actor.Role != user.RoleAdmin {
		return nil, common.NewError(common.CodeForbidden, "only admins may read the deletion log", nil)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, entityType, limit, offset)
}
