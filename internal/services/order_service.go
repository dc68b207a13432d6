package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/infra"
	rabbit "github.com/Dany1912-dev/ProyectoMetodologia/internal/infra/rabbitmq"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/logger"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/metrics"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/repository"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

// activeStatusSet is the filter inherited from the previous system. It
// names every defined status, so today it matches all orders; it is kept
// as an explicit set rather than dropped, in case Cancelled is ever
// excluded on purpose.
var activeStatusSet = []domain.OrderStatus{
	domain.StatusPending,
	domain.StatusInProcess,
	domain.StatusCompleted,
	domain.StatusCancelled,
}

// OrderLineRequest is one requested product-quantity pair.
type OrderLineRequest struct {
	ProductID uint64
	Quantity  int64
}

type OrderService struct {
	repo        repository.OrderRepository
	catalog     infra.CatalogClientInterface
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(r repository.OrderRepository, c infra.CatalogClientInterface, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		catalog:   c,
		publisher: pub,
	}
}

func (u *OrderService) SetRedisClient(client *redis.Client) {
	u.redisClient = client
}

// RegisterOrder validates, prices and persists a new order for the given
// customer. Lines whose product the catalog does not know are dropped
// without error; the total covers only the lines that survive. The price
// on each line is a snapshot, later catalog changes never touch it.
func (u *OrderService) RegisterOrder(ctx context.Context, customerID uint64, lines []OrderLineRequest, notes string, special bool, specialDate *time.Time) (*domain.Order, error) {
	if special {
		if specialDate == nil {
			return nil, domain.NewValidationError("special orders require a delivery date")
		}
		if calendarDaysUntil(time.Now(), *specialDate) < domain.MinSpecialNoticeDays {
			return nil, domain.NewValidationError(fmt.Sprintf("special orders require at least %d days of notice", domain.MinSpecialNoticeDays))
		}
	} else {
		// A delivery date on a regular order is ignored, not rejected.
		specialDate = nil
	}

	ids := make([]uint64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	products, err := u.lookupProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok {
			continue
		}
		line := domain.OrderLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: p.Price,
		}
		total = total.Add(line.Subtotal())
		orderLines = append(orderLines, line)
	}

	order := &domain.Order{
		CustomerID:          customerID,
		PlacedAt:            time.Now(),
		Status:              domain.StatusPending,
		Total:               total,
		Notes:               notes,
		Special:             special,
		SpecialDeliveryDate: specialDate,
		Lines:               orderLines,
	}

	if err := u.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersTotal.WithLabelValues(string(domain.StatusPending)).Inc()

	go u.publishOrderCreatedNotification(context.Background(), order)

	return order, nil
}

func (u *OrderService) publishOrderCreatedNotification(ctx context.Context, order *domain.Order) {
	body := fmt.Sprintf("Order #%d has been registered.", order.ID)
	if order.Special {
		body = fmt.Sprintf("Special order #%d has been registered.", order.ID)
	}

	notification := domain.OrderNotification{
		ID:          uuid.NewString(),
		Title:       "New order",
		Body:        body,
		OrderID:     order.ID,
		PublishedAt: time.Now(),
	}

	if err := u.publisher.Publish(ctx, "order.created", notification); err != nil {
		metrics.NotificationFailures.Inc()
		logger.Log.Warn("order notification dropped",
			zap.Uint64("orderId", order.ID),
			zap.Error(err),
		)
	}
}

// GetActiveOrders returns orders matching the active status set, owner and
// lines attached, newest first.
func (u *OrderService) GetActiveOrders(ctx context.Context) ([]domain.Order, error) {
	return u.repo.FindByStatusIn(ctx, activeStatusSet)
}

// UpdateOrderStatus moves the order to the given status. The raw value
// must name a known status and the move must be legal: Completed and
// Cancelled are terminal, and cancelling is only allowed within the
// cancellation window after placement.
func (u *OrderService) UpdateOrderStatus(ctx context.Context, id uint64, rawStatus string) (*domain.Order, error) {
	next, ok := domain.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown order status %q", rawStatus))
	}

	order, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domain.NewValidationError(fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
	}
	if next == domain.StatusCancelled && order.Status != domain.StatusCancelled {
		if time.Since(order.PlacedAt) > domain.CancellationWindow {
			return nil, domain.NewValidationError("orders can only be cancelled within 24 hours of placement")
		}
	}

	if err := u.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}

func (u *OrderService) GetOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// GetOrdersByCustomer returns the customer's order history, newest first,
// with each line carrying its product's current catalog name.
func (u *OrderService) GetOrdersByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	orders, err := u.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	u.attachProductNames(ctx, orders)
	return orders, nil
}

// attachProductNames decorates order lines with catalog names through one
// batched lookup across all orders. Names are cosmetic on this view, so a
// catalog failure only logs.
func (u *OrderService) attachProductNames(ctx context.Context, orders []domain.Order) {
	seen := make(map[uint64]struct{})
	ids := make([]uint64, 0)
	for i := range orders {
		for _, l := range orders[i].Lines {
			if _, dup := seen[l.ProductID]; dup {
				continue
			}
			seen[l.ProductID] = struct{}{}
			ids = append(ids, l.ProductID)
		}
	}
	if len(ids) == 0 {
		return
	}

	products, err := u.lookupProducts(ctx, ids)
	if err != nil {
		logger.Log.Warn("could not resolve product names", zap.Error(err))
		return
	}

	for i := range orders {
		for j := range orders[i].Lines {
			if p, ok := products[orders[i].Lines[j].ProductID]; ok {
				orders[i].Lines[j].ProductName = p.Name
			}
		}
	}
}

// lookupProducts serves each id from the Redis cache when possible and
// fetches the rest from the catalog in one batch, caching what it finds.
// Ids the catalog does not know are absent from the result.
func (u *OrderService) lookupProducts(ctx context.Context, ids []uint64) (map[uint64]infra.ProductInfo, error) {
	found := make(map[uint64]infra.ProductInfo, len(ids))
	missing := make([]uint64, 0, len(ids))

	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if u.redisClient != nil {
			cached, err := u.redisClient.Get(ctx, productCacheKey(id)).Result()
			if err == nil {
				var p infra.ProductInfo
				if err := json.Unmarshal([]byte(cached), &p); err == nil {
					found[id] = p
					continue
				}
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return found, nil
	}

	fetched, err := u.catalog.FindProductsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	for id, p := range fetched {
		found[id] = p
		if u.redisClient != nil {
			if data, err := json.Marshal(p); err == nil {
				u.redisClient.Set(ctx, productCacheKey(id), data, time.Minute)
			}
		}
	}

	return found, nil
}

// WarmupProductCache primes the Redis cache for the given products.
func (u *OrderService) WarmupProductCache(ctx context.Context, productIDs []uint64) error {
	if u.redisClient == nil {
		return nil
	}
	_, err := u.lookupProducts(ctx, productIDs)
	return err
}

func productCacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

// calendarDaysUntil counts whole calendar days between the dates of the
// two instants, ignoring time of day.
func calendarDaysUntil(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}
