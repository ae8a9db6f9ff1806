package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

type stubUserRepo struct {
	users  []*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context, page, limit int) ([]*domain.User, int64, error) {
	start := (page - 1) * limit
	if start > len(r.users) {
		start = len(r.users)
	}
	end := start + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	out := make([]*domain.User, 0, end-start)
	for _, u := range r.users[start:end] {
		out = append(out, cloneUser(u))
	}
	return out, int64(len(r.users)), nil
}

func (r *stubUserRepo) FindByKey(_ context.Context, key domain.UserKey) (*domain.User, error) {
	for _, u := range r.users {
		if key.ByEmail() && u.Email == key.Email {
			return cloneUser(u), nil
		}
		if !key.ByEmail() && u.ID == key.ID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := cloneUser(user)
	created.ID = "u" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users = append(r.users, cloneUser(created))
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email && u.ID != id {
			return nil, domain.ErrEmailTaken
		}
	}
	for i, u := range r.users {
		if u.ID == id {
			updated := cloneUser(user)
			updated.ID = id
			r.users[i] = cloneUser(updated)
			return updated, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubProductRepo struct {
	products []*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{nextID: 1}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}

func (r *stubProductRepo) List(_ context.Context, page, limit int) ([]*domain.Product, int64, error) {
	start := (page - 1) * limit
	if start > len(r.products) {
		start = len(r.products)
	}
	end := start + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	out := make([]*domain.Product, 0, end-start)
	for _, p := range r.products[start:end] {
		out = append(out, cloneProduct(p))
	}
	return out, int64(len(r.products)), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, cloneProduct(p))
				break
			}
		}
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	created := cloneProduct(product)
	created.ID = "p" + strconv.Itoa(r.nextID)
	r.nextID++
	r.products = append(r.products, cloneProduct(created))
	return created, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, product *domain.Product) (*domain.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			updated := cloneProduct(product)
			updated.ID = id
			updated.DateEntry = p.DateEntry
			r.products[i] = cloneProduct(updated)
			return updated, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

type stubOrderRepo struct {
	orders []*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{nextID: 1}
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = append([]domain.LineItem(nil), o.Items...)
	return &clone
}

func (r *stubOrderRepo) List(_ context.Context, page, limit int) ([]*domain.Order, int64, error) {
	start := (page - 1) * limit
	if start > len(r.orders) {
		start = len(r.orders)
	}
	end := start + limit
	if end > len(r.orders) {
		end = len(r.orders)
	}
	out := make([]*domain.Order, 0, end-start)
	for _, o := range r.orders[start:end] {
		out = append(out, cloneOrder(o))
	}
	return out, int64(len(r.orders)), nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	created := cloneOrder(order)
	created.ID = "o" + strconv.Itoa(r.nextID)
	r.nextID++
	r.orders = append(r.orders, cloneOrder(created))
	return created, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus, processedAt time.Time) (*domain.Order, error) {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			r.orders[i].DateProcessed = processedAt
			return cloneOrder(r.orders[i]), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

// stubHasher is a reversible fake; real hashing is covered by the bcrypt
// adapter's own tests.
type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (stubHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("hash mismatch")
	}
	return nil
}

type stubTokens struct {
	signErr error
}

func (s stubTokens) Sign(userID string) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "token-for-" + userID, nil
}

func (s stubTokens) Verify(token string) (string, error) {
	var uid string
	if _, err := fmt.Sscanf(token, "token-for-%s", &uid); err != nil {
		return "", domain.ErrInvalidToken
	}
	return uid, nil
}

type stubLimiter struct {
	denied   bool
	allowErr error
	attempts int
	resets   int
}

func (s *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	s.attempts++
	if s.allowErr != nil {
		return false, s.allowErr
	}
	return !s.denied, nil
}

func (s *stubLimiter) Reset(_ context.Context, _ string) error {
	s.resets++
	return nil
}
