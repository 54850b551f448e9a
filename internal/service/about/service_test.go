package about

import (
	"context"
	"testing"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/about"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutService_DefaultsUntilSaved(t *testing.T) {
	ctx := context.Background()
	svc := NewAboutService(local.NewAboutRepository(kvstore.NewMemory()), "1.2.0")

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, about.Default("1.2.0"), got)

	saved, err := svc.Update(ctx, about.UpdateAboutRequest{AppTitle: "ShiftSync HR", ContactEmail: "hr@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", saved.Version)

	got, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ShiftSync HR", got.AppTitle)
	assert.Equal(t, "hr@example.com", got.ContactEmail)
}

func TestAboutService_Update_Validation(t *testing.T) {
	svc := NewAboutService(local.NewAboutRepository(kvstore.NewMemory()), "1.2.0")

	_, err := svc.Update(context.Background(), about.UpdateAboutRequest{ContactEmail: "not-an-email", Website: "nope"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "app_title")
	assert.Contains(t, fields, "contact_email")
	assert.Contains(t, fields, "website")
}
