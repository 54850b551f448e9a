package about

import "context"

type AboutService interface {
	Get(ctx context.Context) (AboutData, error)
	Update(ctx context.Context, req UpdateAboutRequest) (AboutData, error)
}
