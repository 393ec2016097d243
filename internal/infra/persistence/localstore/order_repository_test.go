package localstore

import (
	"context"
	"testing"
	"time"

	"elegance/internal/domain/entity"
	"elegance/internal/domain/repository"
	"elegance/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_SeedsFixturesOnFirstUse(t *testing.T) {
	store := kvstore.NewMemoryStore()
	defer store.Close()
	repo := NewOrderRepository(store, testLogger())

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Newest first.
	assert.Equal(t, "ord-002", orders[0].ID)
	assert.Equal(t, "ord-001", orders[1].ID)
}

func TestOrderRepository_AppendAndFind(t *testing.T) {
	store := kvstore.NewMemoryStore()
	defer store.Close()
	repo := NewOrderRepository(store, testLogger())
	ctx := context.Background()

	placed := &entity.Order{
		ID:         "ord-100",
		PaymentRef: "pay_abc123def4567",
		UserID:     "user1712000000000",
		Lines:      []entity.OrderLine{{Name: "Signature Latte", Price: 5.50, Quantity: 2}},
		Total:      11.00,
		Status:     entity.OrderStatusProcessing,
		PlacedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Append(ctx, placed))

	found, err := repo.FindByID(ctx, "ord-100")
	require.NoError(t, err)
	assert.Equal(t, placed.PaymentRef, found.PaymentRef)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "ord-100", all[0].ID)
}

func TestOrderRepository_ListByUser(t *testing.T) {
	store := kvstore.NewMemoryStore()
	defer store.Close()
	repo := NewOrderRepository(store, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &entity.Order{ID: "ord-100", UserID: "user-a", PlacedAt: time.Now()}))
	require.NoError(t, repo.Append(ctx, &entity.Order{ID: "ord-101", UserID: "user-b", PlacedAt: time.Now()}))

	mine, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ord-100", mine[0].ID)

	// The seed fixtures are guest orders and belong to nobody's history.
	none, err := repo.ListByUser(ctx, "user-c")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	store := kvstore.NewMemoryStore()
	defer store.Close()
	repo := NewOrderRepository(store, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.UpdateStatus(ctx, "ord-002", entity.OrderStatusCompleted))

	updated, err := repo.FindByID(ctx, "ord-002")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)

	err = repo.UpdateStatus(ctx, "ord-999", entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
