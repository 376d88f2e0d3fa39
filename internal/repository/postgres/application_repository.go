package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerhub/internal/common"
	"careerhub/internal/domain/application"
)

const applicationColumns = `id, listing_id, applicant_email, applicant_name, image_url, description, resume_link, status, created_at, updated_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.ListingID, app.ApplicantEmail, app.ApplicantName, app.ImageURL,
		app.Description, app.ResumeLink, app.Status, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) ListByListing(ctx context.Context, listingID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE listing_id = $1 ORDER BY created_at`, listingID)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, email string) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE applicant_email = $1 ORDER BY created_at DESC`, email)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, arg any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	items := []application.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *app)
	}
	return items, nil
}

func (r *ApplicationRepository) FindByListingAndApplicant(ctx context.Context, listingID common.UUID, email string) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE listing_id = $1 AND applicant_email = $2`, listingID, email)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ApplicationRepository) DeleteByListing(ctx context.Context, listingID common.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE listing_id = $1`, listingID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete listing applications", err)
	}
	return nil
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	var status sql.NullString
	err := row.Scan(&app.ID, &app.ListingID, &app.ApplicantEmail, &app.ApplicantName, &app.ImageURL,
		&app.Description, &app.ResumeLink, &status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// NULL or legacy status values always read as pending.
	app.Status = application.Normalize(application.Status(status.String))
	return &app, nil
}
