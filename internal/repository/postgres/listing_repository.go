package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"careerhub/internal/common"
	"careerhub/internal/domain/listing"
)

const listingColumns = `id, kind, title, posted_by, description, prerequisites, skills, responsibilities, contact_email, status, created_at, updated_at`

type ListingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, item listing.Listing) (*listing.Listing, error) {
	item.ID = common.NewUUID()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO listings (`+listingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.Kind, item.Title, item.PostedBy, item.Description,
		pq.Array(item.Prerequisites), pq.Array(item.Skills), pq.Array(item.Responsibilities),
		item.ContactEmail, item.Status, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create listing", err)
	}
	return &item, nil
}

func (r *ListingRepository) Update(ctx context.Context, item listing.Listing) (*listing.Listing, error) {
	item.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE listings SET title = $1, description = $2, prerequisites = $3, skills = $4, responsibilities = $5, contact_email = $6, status = $7, updated_at = $8
		WHERE id = $9`,
		item.Title, item.Description, pq.Array(item.Prerequisites), pq.Array(item.Skills), pq.Array(item.Responsibilities),
		item.ContactEmail, item.Status, item.UpdatedAt, item.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update listing", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	return &item, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id common.UUID) (*listing.Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	item, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "listing not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load listing", err)
	}
	return item, nil
}

func (r *ListingRepository) List(ctx context.Context, filter listing.Filter) ([]listing.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE kind = $1`
	args := []any{filter.Kind}
	if filter.PostedBy != "" {
		args = append(args, filter.PostedBy)
		query += fmt.Sprintf(" AND posted_by = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list listings", err)
	}
	defer rows.Close()
	items := []listing.Listing{}
	for rows.Next() {
		item, err := scanListing(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan listing", err)
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete listing", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ListingRepository) AddParticipant(ctx context.Context, id common.UUID, email string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO listing_participants (listing_id, email, joined_at)
		VALUES ($1, $2, $3) ON CONFLICT (listing_id, email) DO NOTHING`, id, email, time.Now().UTC())
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to add participant", err)
	}
	return nil
}

func (r *ListingRepository) RemoveParticipant(ctx context.Context, id common.UUID, email string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM listing_participants WHERE listing_id = $1 AND email = $2`, id, email)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to remove participant", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "participant not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ListingRepository) ListParticipants(ctx context.Context, id common.UUID) ([]listing.Participant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT listing_id, email, joined_at FROM listing_participants WHERE listing_id = $1 ORDER BY joined_at`, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list participants", err)
	}
	defer rows.Close()
	items := []listing.Participant{}
	for rows.Next() {
		var p listing.Participant
		if err := rows.Scan(&p.ListingID, &p.Email, &p.JoinedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan participant", err)
		}
		items = append(items, p)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*listing.Listing, error) {
	var item listing.Listing
	err := row.Scan(&item.ID, &item.Kind, &item.Title, &item.PostedBy, &item.Description,
		pq.Array(&item.Prerequisites), pq.Array(&item.Skills), pq.Array(&item.Responsibilities),
		&item.ContactEmail, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
