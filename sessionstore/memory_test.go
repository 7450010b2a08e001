package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/Kariqs/bakebites/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	_, err := store.Load(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	visitor := models.NewVisitorSession("v1")
	require.NoError(t, visitor.Cart.Add(models.Product{ID: "a", Name: "A", Price: decimal.RequireFromString("35.00")}, 2))
	visitor.Steppers.Increment("a")
	require.NoError(t, store.Save(ctx, visitor))

	loaded, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Cart.Quantity("a"))
	assert.Equal(t, "70.00", loaded.Cart.Total().StringFixed(2))
	assert.Equal(t, 2, loaded.Steppers.Value("a"))
}

func TestMemoryStore_LoadReturnsPrivateCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	require.NoError(t, store.Save(ctx, models.NewVisitorSession("v1")))

	first, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	require.NoError(t, first.Cart.Add(models.Product{ID: "a", Name: "A", Price: decimal.NewFromInt(1)}, 1))

	second, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.True(t, second.Cart.IsEmpty())
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	alice := models.NewVisitorSession("alice")
	require.NoError(t, alice.Cart.Add(models.Product{ID: "a", Name: "A", Price: decimal.NewFromInt(5)}, 3))
	require.NoError(t, store.Save(ctx, alice))
	require.NoError(t, store.Save(ctx, models.NewVisitorSession("bob")))

	bob, err := store.Load(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, bob.Cart.IsEmpty())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, models.NewVisitorSession("v1")))

	now = now.Add(30 * time.Second)
	_, err := store.Load(ctx, "v1")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Load(ctx, "v1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	require.NoError(t, store.Save(ctx, models.NewVisitorSession("v1")))
	require.NoError(t, store.Delete(ctx, "v1"))

	_, err := store.Load(ctx, "v1")
	assert.ErrorIs(t, err, ErrNotFound)
}
