package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/orcamento-api/internal/catalog"
	"github.com/noah-isme/orcamento-api/internal/common"
	"github.com/noah-isme/orcamento-api/internal/kvstore"
)

func newService(store kvstore.Store) *catalog.Service {
	return catalog.NewService(catalog.ServiceConfig{
		Store:  store,
		Logger: zerolog.Nop(),
	})
}

func TestAddRejectsInvalidEntries(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	cases := []catalog.AddParams{
		{Name: "", Price: 10},
		{Name: "   ", Price: 10},
		{Name: "Chair", Price: 0},
		{Name: "Chair", Price: -5},
	}
	for _, params := range cases {
		_, err := svc.Add(ctx, params)
		require.Error(t, err, "params %+v", params)
		var appErr *common.AppError
		require.True(t, errors.As(err, &appErr))
		require.Equal(t, "VALIDATION", appErr.Code)
		require.Empty(t, svc.List())
	}
}

func TestAddAppendsEntryWithDefaults(t *testing.T) {
	svc := newService(nil)
	entry, err := svc.Add(context.Background(), catalog.AddParams{Name: "  Cadeira Gamer  ", Price: 99.90})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.Equal(t, "Cadeira Gamer", entry.Name)
	require.True(t, entry.Price.Equal(decimal.NewFromFloat(99.90)))
	require.Equal(t, catalog.DefaultImageReference, entry.ImageReference)

	listed := svc.List()
	require.Len(t, listed, 1)
	require.Equal(t, entry, listed[0])
}

func TestCatalogRoundTripsThroughStorage(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()

	first := newService(store)
	a, err := first.Add(ctx, catalog.AddParams{Name: "Mesa", Price: 250})
	require.NoError(t, err)
	b, err := first.Add(ctx, catalog.AddParams{Name: "Luminária", Price: 79.90, ImageReference: "https://example.com/lamp.png"})
	require.NoError(t, err)

	second := newService(store)
	second.Load(ctx)
	restored := second.List()
	require.Len(t, restored, 2)
	require.Equal(t, a.ID, restored[0].ID)
	require.Equal(t, b.Name, restored[1].Name)
	require.Equal(t, "https://example.com/lamp.png", restored[1].ImageReference)
	require.True(t, restored[1].Price.Equal(b.Price))
}

func TestLoadDiscardsCorruptedPayload(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, catalog.DefaultStorageKey, []byte("{not json"), 0))

	svc := newService(store)
	svc.Load(ctx)
	require.Empty(t, svc.List())

	// A valid envelope with the wrong payload shape is discarded too.
	require.NoError(t, store.Save(ctx, catalog.DefaultStorageKey, []byte(`{"data":42,"timestamp":1}`), 0))
	svc.Load(ctx)
	require.Empty(t, svc.List())
}

func TestRemoveEntry(t *testing.T) {
	svc := newService(kvstore.NewMemory())
	ctx := context.Background()
	entry, err := svc.Add(ctx, catalog.AddParams{Name: "Mesa", Price: 250})
	require.NoError(t, err)

	require.False(t, svc.Remove(ctx, "missing-id"))
	require.Len(t, svc.List(), 1)

	require.True(t, svc.Remove(ctx, entry.ID))
	require.Empty(t, svc.List())
}
