package impl

import (
	"context"
	"testing"

	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/infra/catalog"
	"elegance/internal/infra/kvstore"
	"elegance/internal/infra/persistence/localstore"
	"elegance/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (usecase.CartUsecase, *recordingNotifier, kvstore.Store) {
	t.Helper()

	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	notifier := &recordingNotifier{}
	svc := NewCartService(
		catalog.NewStaticCatalog(),
		localstore.NewCartRepository(store, testLogger()),
		notifier,
		testLogger(),
	)

	return svc, notifier, store
}

func TestCartService_AddMergesSameItem(t *testing.T) {
	svc, notifier, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "item2", 1)
	require.NoError(t, err)
	view, err := svc.AddItem(ctx, "item2", 2)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.Count)
	assert.InDelta(t, 3*4.75, view.Total, 1e-9)

	toast, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "Added to cart", toast.Title)
	assert.Equal(t, "2x Cappuccino added to your cart", toast.Message)
}

func TestCartService_AddUnknownItem(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), "item999", 1)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCartService_AddRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), "item1", 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = svc.AddItem(context.Background(), "item1", -2)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_SetQuantityZeroRemoves(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "item1", 2)
	require.NoError(t, err)

	view, err := svc.SetQuantity(ctx, "item1", 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Count)
}

func TestCartService_SetQuantityAbsentIsNoOp(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "item1", 1)
	require.NoError(t, err)

	view, err := svc.SetQuantity(ctx, "item999", 4)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "item1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "item4", 1)
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "item1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "item4", view.Items[0].ID)

	require.NoError(t, svc.Clear(ctx))

	view, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_StatePersistsAcrossInstances(t *testing.T) {
	svc, _, store := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "item6", 2)
	require.NoError(t, err)

	reopened := NewCartService(
		catalog.NewStaticCatalog(),
		localstore.NewCartRepository(store, testLogger()),
		&recordingNotifier{},
		testLogger(),
	)

	view, err := reopened.Get(ctx)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "item6", view.Items[0].ID)
	assert.Equal(t, 2, view.Items[0].Quantity)
}
