package impl

import (
	"context"
	"testing"
	"time"

	"elegance/internal/domain/entity"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/domain/repository"
	"elegance/internal/infra/kvstore"
	"elegance/internal/infra/persistence/localstore"
	"elegance/internal/infra/qrcode"
	"elegance/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (usecase.OrderUsecase, repository.OrderRepository) {
	t.Helper()

	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	repo := localstore.NewOrderRepository(store, testLogger())
	svc := NewOrderService(repo, qrcode.NewQRCodeService(256, "M"), testLogger())

	return svc, repo
}

func adminUser() *entity.User {
	return &entity.User{ID: "admin", Name: "Admin User", Email: "admin@cafeelegance.com", Role: entity.RoleAdmin}
}

func customerUser(id string) *entity.User {
	return &entity.User{ID: id, Name: "jane", Email: "jane@example.com", Role: entity.RoleCustomer}
}

func TestOrderService_RequiresAuthentication(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	_, err := svc.List(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	_, err = svc.Get(ctx, nil, "ord-001")
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestOrderService_AdminSeesWholeBook(t *testing.T) {
	svc, _ := newOrderFixture(t)

	orders, err := svc.List(context.Background(), adminUser())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_CustomerSeesOwnOrdersOnly(t *testing.T) {
	svc, repo := newOrderFixture(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &entity.Order{ID: "ord-100", UserID: "user-a", PlacedAt: time.Now()}))

	mine, err := svc.List(ctx, customerUser("user-a"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ord-100", mine[0].ID)

	// Someone else's order reads as not found rather than forbidden.
	_, err = svc.Get(ctx, customerUser("user-b"), "ord-100")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateStatusTransitions(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	// ord-002 is processing and may complete.
	updated, err := svc.UpdateStatus(ctx, "ord-002", "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)

	// Completed orders are final.
	_, err = svc.UpdateStatus(ctx, "ord-002", "cancelled")
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS_CHANGE", appErr.ErrorCode())
}

func TestOrderService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.UpdateStatus(context.Background(), "ord-002", "shipped")
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS_CHANGE", appErr.ErrorCode())
}

func TestOrderService_UpdateStatusUnknownOrder(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.UpdateStatus(context.Background(), "ord-999", "completed")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ReceiptQR(t *testing.T) {
	svc, _ := newOrderFixture(t)

	png, err := svc.ReceiptQR(context.Background(), adminUser(), "ord-001")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	_, err = svc.ReceiptQR(context.Background(), customerUser("user-x"), "ord-001")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
