package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"elegance/config"
	deliverycontext "elegance/internal/delivery/context"
	"elegance/internal/domain/entity"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/domain/repository"
	"elegance/internal/domain/service"
	"elegance/internal/usecase"

	"github.com/google/uuid"
)

// checkoutService implements the CheckoutUsecase interface: validate the
// form, charge the gateway, record the order, clear the cart, confirm.
type checkoutService struct {
	carts    repository.CartRepository
	sessions repository.SessionRepository
	orders   repository.OrderRepository
	gateway  service.PaymentGateway
	notifier service.ToastNotifier
	logger   *slog.Logger
	currency string
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cfg *config.Config,
	carts repository.CartRepository,
	sessions repository.SessionRepository,
	orders repository.OrderRepository,
	gateway service.PaymentGateway,
	notifier service.ToastNotifier,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		carts:    carts,
		sessions: sessions,
		orders:   orders,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
		currency: cfg.Payment.Currency,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout runs one checkout attempt. Validation failures mutate nothing; a
// declined or failed charge leaves the cart intact. Only a fully recorded
// order clears the cart and produces a confirmation.
func (srv *checkoutService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutConfirmation, error) {
	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	if missing := missingFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"Please fill out all required fields: " + strings.Join(missing, ", "))
	}

	key := input.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	result, err := srv.gateway.Charge(ctx, service.ChargeRequest{
		IdempotencyKey: key,
		Amount:         cart.Total(),
		Currency:       srv.currency,
		CustomerName:   input.Name,
		CustomerEmail:  input.Email,
	})
	if err != nil {
		srv.log(ctx).Warn("Charge failed before a decision", slog.Any("error", err))

		return nil, domainerrors.ErrPaymentUnavailable
	}

	if result.Outcome != service.OutcomeApproved {
		srv.log(ctx).Info("Charge declined", slog.String("idempotency_key", key))

		return nil, domainerrors.ErrPaymentDeclined
	}

	order := srv.buildOrder(ctx, cart, input, result.Reference)

	if err := srv.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	if err := srv.carts.Clear(ctx); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID),
		slog.String("payment_ref", order.PaymentRef),
		slog.Float64("total", order.Total),
	)

	srv.notifier.Notify(ctx, service.Toast{
		Title:    "Payment successful!",
		Message:  fmt.Sprintf("Your order has been placed. Order ID: %s", result.Reference),
		Severity: service.SeveritySuccess,
	})

	return &usecase.CheckoutConfirmation{Order: order, PaymentRef: result.Reference}, nil
}

// buildOrder snapshots the cart and form into an order record. A signed-in
// session links the order to its record id; guests leave it empty.
func (srv *checkoutService) buildOrder(ctx context.Context, cart *entity.Cart, input usecase.CheckoutInput, paymentRef string) *entity.Order {
	var userID string
	if user, err := srv.sessions.Load(ctx); err == nil && user != nil {
		userID = user.ID
	}

	lines := make([]entity.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, entity.OrderLine{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return &entity.Order{
		ID:         newOrderID(),
		PaymentRef: paymentRef,
		UserID:     userID,
		Customer: entity.CustomerDetails{
			Name:    input.Name,
			Email:   input.Email,
			Address: input.Address,
			City:    input.City,
			Zip:     input.Zip,
			Phone:   input.Phone,
		},
		Lines:    lines,
		Total:    cart.Total(),
		Status:   entity.OrderStatusProcessing,
		PlacedAt: time.Now().UTC(),
	}
}

// missingFields reports the blank required fields in form order.
func missingFields(input usecase.CheckoutInput) []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"address", input.Address},
		{"city", input.City},
		{"zip", input.Zip},
		{"phone", input.Phone},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

func newOrderID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	return "ord-" + token[:8]
}
