package kvstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "shiftsync:employees:v1", Key("employees", 1))
}

func TestCollection_LoadMissingIsEmpty(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			items, err := NewCollection[item](s, "items", 1).Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestCollection_SaveAndLoad(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := NewCollection[item](s, "items", 1)

			require.NoError(t, c.Save(ctx, []item{{ID: "a", Count: 1}, {ID: "b", Count: 2}}))
			got, err := c.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []item{{ID: "a", Count: 1}, {ID: "b", Count: 2}}, got)

			// A different version is a different key.
			other, err := NewCollection[item](s, "items", 2).Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, other)
		})
	}
}

func TestCollection_UpdateRollsBackOnError(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := NewCollection[item](s, "a", 1)
			b := NewCollection[item](s, "b", 1)
			require.NoError(t, a.Save(ctx, []item{{ID: "x", Count: 1}}))

			boom := errors.New("boom")
			err := s.WithinTx(ctx, func(ctx context.Context) error {
				if err := a.Update(ctx, func(items []item) ([]item, error) {
					items[0].Count = 99
					return items, nil
				}); err != nil {
					return err
				}
				if err := b.Save(ctx, []item{{ID: "y"}}); err != nil {
					return err
				}
				return boom
			})
			require.ErrorIs(t, err, boom)

			gotA, err := a.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, gotA[0].Count)

			gotB, err := b.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, gotB)
		})
	}
}

func TestCollection_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := NewCollection[item](s, "counter", 1)
			require.NoError(t, c.Save(ctx, []item{{ID: "n"}}))

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := c.Update(ctx, func(items []item) ([]item, error) {
						items[0].Count++
						return items, nil
					})
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			got, err := c.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 20, got[0].Count)
		})
	}
}

func TestDocument_SaveAndLoad(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			d := NewDocument[item](s, "single", 1)

			_, ok, err := d.Load(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, d.Save(ctx, item{ID: "only", Count: 3}))
			got, ok, err := d.Load(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, item{ID: "only", Count: 3}, got)
		})
	}
}

func TestCollection_CorruptValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Put(ctx, Key("bad", 1), []byte("{not json")))

	_, err := NewCollection[item](s, "bad", 1).Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptValue)
}
