package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	deliverycontext "elegance/internal/delivery/context"
	"elegance/internal/domain/entity"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/domain/repository"
	"elegance/internal/domain/service"
	"elegance/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. The mutex serializes
// read-modify-write sequences over the single cart snapshot; the repository
// itself only persists whole snapshots.
type cartService struct {
	catalog  repository.CatalogRepository
	carts    repository.CartRepository
	notifier service.ToastNotifier
	logger   *slog.Logger

	mu sync.Mutex
}

// NewCartService is the constructor for cartService.
func NewCartService(
	catalog repository.CatalogRepository,
	carts repository.CartRepository,
	notifier service.ToastNotifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		catalog:  catalog,
		carts:    carts,
		notifier: notifier,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the current cart with derived totals.
func (srv *cartService) Get(ctx context.Context) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	return cartView(cart), nil
}

// AddItem adds quantity of a catalog item. An existing entry for the same id
// has its quantity incremented, preserving entry order.
func (srv *cartService) AddItem(ctx context.Context, itemID string, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := srv.catalog.ItemByID(itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	cart.Add(item, quantity)

	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Item added to cart",
		slog.String("item_id", itemID),
		slog.Int("quantity", quantity),
	)

	srv.notifier.Notify(ctx, service.Toast{
		Title:    "Added to cart",
		Message:  fmt.Sprintf("%dx %s added to your cart", quantity, item.Name),
		Severity: service.SeveritySuccess,
	})

	return cartView(cart), nil
}

// SetQuantity sets an entry's quantity exactly. Zero or less removes the
// entry; an absent id is a silent no-op.
func (srv *cartService) SetQuantity(ctx context.Context, itemID string, quantity int) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(itemID, quantity)

	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cartView(cart), nil
}

// RemoveItem deletes an entry if present, silent no-op otherwise.
func (srv *cartService) RemoveItem(ctx context.Context, itemID string) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.carts.Load(ctx)
	if err != nil {
		return nil, err
	}

	cart.Remove(itemID)

	if err := srv.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cartView(cart), nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.carts.Clear(ctx)
}

func cartView(cart *entity.Cart) *usecase.CartView {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &usecase.CartView{
		Items: items,
		Total: cart.Total(),
		Count: cart.Count(),
	}
}
