package local

import (
	"context"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/about"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type aboutRepository struct {
	doc *kvstore.Document[about.AboutData]
}

func NewAboutRepository(store kvstore.Store) about.AboutRepository {
	return &aboutRepository{doc: kvstore.NewDocument[about.AboutData](store, documentAbout, schemaVersion)}
}

func (r *aboutRepository) Get(ctx context.Context) (about.AboutData, bool, error) {
	return r.doc.Load(ctx)
}

func (r *aboutRepository) Save(ctx context.Context, data about.AboutData) error {
	return r.doc.Save(ctx, data)
}
