package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/review"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, item review.Review) (*review.Review, error) {
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO reviews (id, listing_id, author_email, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.ListingID, item.AuthorEmail, item.Rating, item.Comment, item.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create review", err)
	}
	return &item, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id common.UUID) (*review.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, listing_id, author_email, rating, comment, created_at FROM reviews WHERE id = $1`, id)
	var item review.Review
	if err := row.Scan(&item.ID, &item.ListingID, &item.AuthorEmail, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "review not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load review", err)
	}
	return &item, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID common.UUID) ([]review.Review, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, listing_id, author_email, rating, comment, created_at FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC`, listingID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list reviews", err)
	}
	defer rows.Close()
	items := []review.Review{}
	for rows.Next() {
		var item review.Review
		if err := rows.Scan(&item.ID, &item.ListingID, &item.AuthorEmail, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan review", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete review", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "review not found", sql.ErrNoRows)
	}
	return nil
}
