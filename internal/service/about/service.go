package about

import (
	"context"
	"fmt"
	"strings"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/about"
)

type AboutServiceImpl struct {
	aboutRepo about.AboutRepository
	version   string
}

// NewAboutService serves about.Default(version) until an admin saves custom content.
func NewAboutService(aboutRepo about.AboutRepository, version string) about.AboutService {
	return &AboutServiceImpl{aboutRepo: aboutRepo, version: version}
}

func (s *AboutServiceImpl) Get(ctx context.Context) (about.AboutData, error) {
	data, ok, err := s.aboutRepo.Get(ctx)
	if err != nil {
		return about.AboutData{}, fmt.Errorf("failed to get about data: %w", err)
	}
	if !ok {
		return about.Default(s.version), nil
	}
	return data, nil
}

func (s *AboutServiceImpl) Update(ctx context.Context, req about.UpdateAboutRequest) (about.AboutData, error) {
	if err := req.Validate(); err != nil {
		return about.AboutData{}, err
	}

	data := about.AboutData{
		AppTitle:     strings.TrimSpace(req.AppTitle),
		Version:      strings.TrimSpace(req.Version),
		Description:  strings.TrimSpace(req.Description),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		Website:      strings.TrimSpace(req.Website),
	}
	if data.Version == "" {
		data.Version = s.version
	}
	if err := s.aboutRepo.Save(ctx, data); err != nil {
		return about.AboutData{}, fmt.Errorf("failed to save about data: %w", err)
	}
	return data, nil
}
