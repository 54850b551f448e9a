package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to TEST_DATABASE_URL and empties the records table.
// Tests are skipped when no database is configured.
func newTestStore(t *testing.T) *postgresql.Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)

	store, err := postgresql.NewStore(ctx, db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = db.Exec(ctx, "TRUNCATE TABLE records")
	require.NoError(t, err)
	return store
}
