package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

const defaultClient = "client"

// OrderService implements the Order Engine. It owns the orders collection and
// reaches users and products only through their read interfaces.
type OrderService struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, products: products, logger: logger}
}

// Create validates the request against the user directory and product
// catalog before persisting. All referential checks run up front: the order
// is either written whole or not at all.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*ports.ExpandedOrder, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one product", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: every line item needs a product id", domain.ErrInvalidInput)
		}
		if item.Qty <= 0 {
			return nil, fmt.Errorf("%w: qty must be a positive integer", domain.ErrInvalidInput)
		}
	}

	if _, err := s.users.FindByKey(ctx, domain.UserKey{ID: in.UserID}); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: userId does not reference an existing user", domain.ErrInvalidInput)
		}
		return nil, err
	}

	// All-or-nothing reference check: every distinct product id must exist.
	ids := distinctProductIDs(in.Items)
	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, fmt.Errorf("%w: one or more product ids do not exist", domain.ErrInvalidInput)
	}

	client := in.Client
	if client == "" {
		client = defaultClient
	}

	items := make([]domain.LineItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = domain.LineItem{ProductID: item.ProductID, Qty: item.Qty}
	}

	now := time.Now().UTC()
	created, err := s.orders.Create(ctx, &domain.Order{
		UserID:        in.UserID,
		Client:        client,
		Items:         items,
		Status:        domain.StatusPending,
		DateEntry:     now,
		DateProcessed: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Int("items", len(items)).Msg("order created")
	return s.expand(ctx, created)
}

func (s *OrderService) List(ctx context.Context, page, limit int) ([]*ports.ExpandedOrder, int64, error) {
	orders, total, err := s.orders.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	// One catalog lookup for the whole page.
	var ids []string
	for _, o := range orders {
		for _, item := range o.Items {
			ids = append(ids, item.ProductID)
		}
	}
	snapshots, err := s.snapshotMap(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	expanded := make([]*ports.ExpandedOrder, len(orders))
	for i, o := range orders {
		expanded[i] = expandWith(o, snapshots)
	}
	return expanded, total, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*ports.ExpandedOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, order)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*ports.ExpandedOrder, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrInvalidInput)
	}
	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("status", status).Msg("order status updated")
	return s.expand(ctx, updated)
}

// Delete removes the order and returns its snapshot taken just before the
// delete.
func (s *OrderService) Delete(ctx context.Context, id string) (*ports.ExpandedOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	expanded, err := s.expand(ctx, order)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return expanded, nil
}

// expand joins the order's line items with current product data. A product
// deleted after the order was placed yields a snapshot carrying only its id.
func (s *OrderService) expand(ctx context.Context, order *domain.Order) (*ports.ExpandedOrder, error) {
	var ids []string
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	snapshots, err := s.snapshotMap(ctx, ids)
	if err != nil {
		return nil, err
	}
	return expandWith(order, snapshots), nil
}

func (s *OrderService) snapshotMap(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	if len(ids) == 0 {
		return map[string]domain.Product{}, nil
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[string]domain.Product, len(products))
	for _, p := range products {
		m[p.ID] = *p
	}
	return m, nil
}

func expandWith(order *domain.Order, snapshots map[string]domain.Product) *ports.ExpandedOrder {
	items := make([]ports.ExpandedItem, len(order.Items))
	for i, item := range order.Items {
		product, ok := snapshots[item.ProductID]
		if !ok {
			product = domain.Product{ID: item.ProductID}
		}
		items[i] = ports.ExpandedItem{Qty: item.Qty, Product: product}
	}
	return &ports.ExpandedOrder{
		ID:            order.ID,
		UserID:        order.UserID,
		Client:        order.Client,
		Items:         items,
		Status:        order.Status,
		DateEntry:     order.DateEntry,
		DateProcessed: order.DateProcessed,
	}
}

func distinctProductIDs(items []ports.OrderItemInput) []string {
	seen := make(map[string]struct{}, len(items))
	var ids []string
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
