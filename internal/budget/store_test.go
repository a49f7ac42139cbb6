package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/orcamento-api/internal/budget"
)

func TestStoreAddDefaults(t *testing.T) {
	store := budget.NewStore()
	item := store.Add()
	require.Empty(t, item.Description)
	require.Equal(t, 1, item.Quantity)
	require.True(t, item.UnitPrice.IsZero())
	require.True(t, item.Total.IsZero())
}

func TestStoreIdentifiersNeverReused(t *testing.T) {
	store := budget.NewStore()
	first := store.Add()
	second := store.Add()
	require.Greater(t, second.ID, first.ID)

	store.Remove(second.ID)
	third := store.Add()
	require.Greater(t, third.ID, second.ID)
}

func TestStorePreservesInsertionOrder(t *testing.T) {
	store := budget.NewStore()
	a := store.Add()
	b := store.Add()
	c := store.Add()
	store.Remove(b.ID)
	items := store.Items()
	require.Len(t, items, 2)
	require.Equal(t, a.ID, items[0].ID)
	require.Equal(t, c.ID, items[1].ID)
}

func TestStoreUpdateQuantityCoercion(t *testing.T) {
	store := budget.NewStore()
	added := store.Add()
	store.Update(added.ID, budget.FieldUnitPrice, "10.00")

	cases := map[string]int{
		"3":    3,
		"0":    1,
		"-2":   1,
		"abc":  1,
		"":     1,
		"2.7":  1,
		" 4 ":  4,
		"9999": 9999,
	}
	for raw, want := range cases {
		item, ok := store.Update(added.ID, budget.FieldQuantity, raw)
		require.True(t, ok)
		require.Equal(t, want, item.Quantity, "raw %q", raw)
		require.True(t, item.Total.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(want)))), "raw %q", raw)
	}
}

func TestStoreUpdateUnitPriceCoercion(t *testing.T) {
	store := budget.NewStore()
	added := store.Add()
	store.Update(added.ID, budget.FieldQuantity, "2")

	item, ok := store.Update(added.ID, budget.FieldUnitPrice, "99.90")
	require.True(t, ok)
	require.True(t, item.UnitPrice.Equal(decimal.RequireFromString("99.90")))
	require.True(t, item.Total.Equal(decimal.RequireFromString("199.80")))

	for _, raw := range []string{"-1", "not-a-price", ""} {
		item, ok = store.Update(added.ID, budget.FieldUnitPrice, raw)
		require.True(t, ok)
		require.True(t, item.UnitPrice.IsZero(), "raw %q", raw)
		require.True(t, item.Total.IsZero(), "raw %q", raw)
	}
}

func TestStoreUpdateImageKeepsPreviousOnEmpty(t *testing.T) {
	store := budget.NewStore()
	added := store.Add()
	item, ok := store.Update(added.ID, budget.FieldImage, "https://example.com/chair.png")
	require.True(t, ok)
	require.Equal(t, "https://example.com/chair.png", item.ImageReference)

	item, ok = store.Update(added.ID, budget.FieldImage, "  ")
	require.True(t, ok)
	require.Equal(t, "https://example.com/chair.png", item.ImageReference)
}

func TestStoreUnknownIDIsNoOp(t *testing.T) {
	store := budget.NewStore()
	store.Add()
	_, ok := store.Update(12345, budget.FieldDescription, "ghost")
	require.False(t, ok)
	require.False(t, store.Remove(12345))
	require.Equal(t, 1, store.Len())
}

func TestStoreTotalNotIndependentlySettable(t *testing.T) {
	store := budget.NewStore()
	added := store.Add()
	_, ok := store.Update(added.ID, budget.Field("total"), "999")
	require.False(t, ok)
	items := store.Items()
	require.True(t, items[0].Total.IsZero())
}
