package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/audit"
)

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry audit.Entry) (*audit.Entry, error) {
	entry.ID = common.NewUUID()
	entry.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO deletion_log (id, deleted_by, posted_by, deleted_date, entity_type, deleted_content, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.DeletedBy, entry.PostedBy, entry.DeletedDate, entry.EntityType, entry.DeletedContent, entry.Reason, entry.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to write deletion log", err)
	}
	return &entry, nil
}

func (r *AuditRepository) CreateBatch(ctx context.Context, entries []audit.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to begin deletion log batch", err)
	}
	defer tx.Rollback()
	for _, entry := range entries {
		entry.ID = common.NewUUID()
		entry.CreatedAt = time.Now().UTC()
		_, err := tx.ExecContext(ctx, `INSERT INTO deletion_log (id, deleted_by, posted_by, deleted_date, entity_type, deleted_content, reason, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			entry.ID, entry.DeletedBy, entry.PostedBy, entry.DeletedDate, entry.EntityType, entry.DeletedContent, entry.Reason, entry.CreatedAt)
		if err != nil {
			return common.NewError(common.CodeInternal, "failed to write deletion log batch", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit deletion log batch", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, entityType string, limit, offset int) ([]audit.Entry, error) {
	query := `SELECT id, deleted_by, posted_by, deleted_date, entity_type, deleted_content, reason, created_at FROM deletion_log`
	args := []any{}
	if entityType != "" {
		args = append(args, entityType)
		query += ` WHERE entity_type = $1`
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list deletion log", err)
	}
	defer rows.Close()
	items := []audit.Entry{}
	for rows.Next() {
		var entry audit.Entry
		if err := rows.Scan(&entry.ID, &entry.DeletedBy, &entry.PostedBy, &entry.DeletedDate, &entry.EntityType, &entry.DeletedContent, &entry.Reason, &entry.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan deletion log entry", err)
		}
		items = append(items, entry)
	}
	return items, nil
}
