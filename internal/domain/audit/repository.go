package audit

import "context"

type Repository interface {
	Create(ctx context.Context, entry Entry) (*Entry, error)
	CreateBatch(ctx context.Context, entries []Entry) error
	List(ctx context.Context, entityType string, limit, offset int) ([]Entry, error)
}
