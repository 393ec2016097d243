package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"elegance/internal/domain/entity"
	"elegance/internal/domain/repository"
	"elegance/internal/errors"
	"elegance/internal/infra/kvstore"
)

// keyOrders is the snapshot key holding the order book.
const keyOrders = "orders"

// orderRepository implements repository.OrderRepository over the kvstore.
// The book is one JSON array; a mutex serializes read-modify-write sequences
// because the HTTP server handles requests concurrently.
type orderRepository struct {
	store  kvstore.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kvstore.Store, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{store: store, logger: logger}
}

// load reads the order book, seeding the demo fixtures on first use. A
// corrupt book is reset to the fixtures rather than failing every request.
func (repo *orderRepository) load(ctx context.Context) ([]*entity.Order, error) {
	data, err := repo.store.Get(ctx, keyOrders)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			seeds := seedOrders()
			if err := repo.save(ctx, seeds); err != nil {
				return nil, err
			}

			return seeds, nil
		}

		return nil, errors.Wrap(err, "failed to load order book")
	}

	var orders []*entity.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		repo.logger.Warn("Discarding corrupt order book", slog.Any("error", err))

		return seedOrders(), nil
	}

	return orders, nil
}

func (repo *orderRepository) save(ctx context.Context, orders []*entity.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "failed to encode order book")
	}

	if err := repo.store.Set(ctx, keyOrders, data); err != nil {
		return errors.Wrap(err, "failed to persist order book")
	}

	return nil
}

// List returns all orders, newest first.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(orders)

	return orders, nil
}

// ListByUser returns the orders placed by one session record id, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.UserID == userID {
			filtered = append(filtered, order)
		}
	}

	sortNewestFirst(filtered)

	return filtered, nil
}

// FindByID returns a single order, or repository.ErrOrderNotFound.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// Append adds a newly placed order to the book.
func (repo *orderRepository) Append(ctx context.Context, order *entity.Order) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return err
	}

	return repo.save(ctx, append(orders, order))
}

// UpdateStatus sets the status of an existing order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for _, order := range orders {
		if order.ID == id {
			order.Status = status

			return repo.save(ctx, orders)
		}
	}

	return repository.ErrOrderNotFound
}

func sortNewestFirst(orders []*entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})
}

// seedOrders returns the demo fixtures the storefront ships with. They are
// plain guest orders; every successful checkout appends real entries beside
// them.
func seedOrders() []*entity.Order {
	return []*entity.Order{
		{
			ID:         "ord-001",
			PaymentRef: "pay_seed4f8a2b1c9",
			Customer: entity.CustomerDetails{
				Name:    "John Doe",
				Email:   "john@example.com",
				Address: "123 Main St, Apt 4B",
				City:    "New York",
				Zip:     "10001",
				Phone:   "+1 (555) 123-4567",
			},
			Lines: []entity.OrderLine{
				{Name: "Signature Latte", Price: 5.50, Quantity: 2},
				{Name: "Almond Croissant", Price: 4.75, Quantity: 1},
			},
			Total:    15.75,
			Status:   entity.OrderStatusCompleted,
			PlacedAt: time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         "ord-002",
			PaymentRef: "pay_seed7d3e5f2a8",
			Customer: entity.CustomerDetails{
				Name:    "Jane Smith",
				Email:   "jane@example.com",
				Address: "456 Oak Ave",
				City:    "Brooklyn",
				Zip:     "11201",
				Phone:   "+1 (555) 987-6543",
			},
			Lines: []entity.OrderLine{
				{Name: "Matcha Latte", Price: 5.75, Quantity: 1},
				{Name: "Tiramisu", Price: 6.50, Quantity: 1},
			},
			Total:    12.25,
			Status:   entity.OrderStatusProcessing,
			PlacedAt: time.Date(2024, time.March, 14, 15, 45, 0, 0, time.UTC),
		},
	}
}
