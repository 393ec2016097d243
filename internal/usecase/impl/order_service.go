package impl

import (
	"context"
	"log/slog"

	deliverycontext "elegance/internal/delivery/context"
	"elegance/internal/domain/entity"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/domain/repository"
	"elegance/internal/domain/service"
	"elegance/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. Administrators see the
// whole book; customers only the orders linked to their record id.
type orderService struct {
	orders repository.OrderRepository
	qr     service.QRCodeService
	logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders repository.OrderRepository,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders: orders,
		qr:     qr,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the orders visible to the requester, newest first.
func (srv *orderService) List(ctx context.Context, requester *entity.User) ([]*entity.Order, error) {
	if requester == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	if requester.IsAdmin() {
		return srv.orders.List(ctx)
	}

	return srv.orders.ListByUser(ctx, requester.ID)
}

// Get returns one order visible to the requester. Orders belonging to other
// records read as not found rather than forbidden.
func (srv *orderService) Get(ctx context.Context, requester *entity.User, id string) (*entity.Order, error) {
	if requester == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	order, err := srv.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	if !requester.IsAdmin() && order.UserID != requester.ID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus moves an order to a new status. Only orders still processing
// may change, and only to completed or cancelled.
func (srv *orderService) UpdateStatus(ctx context.Context, id string, status string) (*entity.Order, error) {
	next := entity.OrderStatus(status)
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidStatusChange.WithDetails("unknown status: " + status)
	}

	order, err := srv.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusChange.WithDetails(
			"cannot move " + order.Status.String() + " to " + next.String())
	}

	if err := srv.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", id),
		slog.String("status", next.String()),
	)

	order.Status = next

	return order, nil
}

// ReceiptQR renders the PNG receipt QR code for one order. Visibility rules
// match Get.
func (srv *orderService) ReceiptQR(ctx context.Context, requester *entity.User, id string) ([]byte, error) {
	order, err := srv.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	return srv.qr.GenerateReceiptQR(order.ID, order.PaymentRef)
}
