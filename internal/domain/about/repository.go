package about

import "context"

type AboutRepository interface {
	// Get reports false when nothing has been saved yet
	Get(ctx context.Context) (AboutData, bool, error)
	Save(ctx context.Context, data AboutData) error
}
