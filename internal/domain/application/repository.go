package application

import (
	"context"

	"careerhub/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	ListByListing(ctx context.Context, listingID common.UUID) ([]Application, error)
	ListByApplicant(ctx context.Context, email string) ([]Application, error)
	FindByListingAndApplicant(ctx context.Context, listingID common.UUID, email string) (*Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	Delete(ctx context.Context, id common.UUID) error
	DeleteByListing(ctx context.Context, listingID common.UUID) error
}
