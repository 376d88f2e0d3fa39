package review

import (
	"context"

	"careerhub/internal/common"
)

type Repository interface {
	Create(ctx context.Context, item Review) (*Review, error)
	GetByID(ctx context.Context, id common.UUID) (*Review, error)
	ListByListing(ctx context.Context, listingID common.UUID) ([]Review, error)
	Delete(ctx context.Context, id common.UUID) error
}
