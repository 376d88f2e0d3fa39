package listing

import (
	"context"

	"careerhub/internal/common"
)

type Filter struct {
	Kind     Kind
	PostedBy string
	Status   Status
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, item Listing) (*Listing, error)
	Update(ctx context.Context, item Listing) (*Listing, error)
	GetByID(ctx context.Context, id common.UUID) (*Listing, error)
	List(ctx context.Context, filter Filter) ([]Listing, error)
	Delete(ctx context.Context, id common.UUID) error
	AddParticipant(ctx context.Context, id common.UUID, email string) error
	RemoveParticipant(ctx context.Context, id common.UUID, email string) error
	ListParticipants(ctx context.Context, id common.UUID) ([]Participant, error)
}
