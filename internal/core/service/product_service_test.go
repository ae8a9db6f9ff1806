package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

func newProductFixture(t *testing.T) (*ProductService, *stubProductRepo) {
	t.Helper()
	repo := newStubProductRepo()
	return NewProductService(repo, zerolog.Nop()), repo
}

func floatPtr(f float64) *float64 { return &f }

func TestProductService_Create_Success(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:  "Hamburguesa doble",
		Price: 15,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if product.Image != "" || product.Type != "" {
		t.Fatalf("image/type should default to empty, got %q %q", product.Image, product.Type)
	}
	if product.DateEntry.IsZero() {
		t.Fatalf("dateEntry not set")
	}
}

func TestProductService_Create_ZeroPriceAllowed(t *testing.T) {
	svc, _ := newProductFixture(t)

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Agua", Price: 0}); err != nil {
		t.Fatalf("zero price must be accepted on create: %v", err)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc, _ := newProductFixture(t)

	cases := []struct {
		name string
		in   ports.CreateProductInput
	}{
		{"empty name", ports.CreateProductInput{Name: "  ", Price: 5}},
		{"negative price", ports.CreateProductInput{Name: "Café", Price: -1}},
		{"nan price", ports.CreateProductInput{Name: "Café", Price: math.NaN()}},
		{"inf price", ports.CreateProductInput{Name: "Café", Price: math.Inf(1)}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestProductService_Update_Partial(t *testing.T) {
	svc, _ := newProductFixture(t)
	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Café", Price: 5, Type: "desayuno"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{
		Price: floatPtr(7),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 7 {
		t.Fatalf("price not applied: %v", updated.Price)
	}
	if updated.Name != "Café" || updated.Type != "desayuno" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.DateEntry.Equal(created.DateEntry) {
		t.Fatalf("dateEntry must be immutable")
	}
}

func TestProductService_Update_Validation(t *testing.T) {
	svc, _ := newProductFixture(t)
	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Café", Price: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	cases := []struct {
		name string
		in   ports.UpdateProductInput
	}{
		{"empty patch", ports.UpdateProductInput{}},
		{"blank name", ports.UpdateProductInput{Name: strPtr(" ")}},
		{"zero price", ports.UpdateProductInput{Price: floatPtr(0)}},
		{"negative price", ports.UpdateProductInput{Price: floatPtr(-2)}},
	}
	for _, tc := range cases {
		if _, err := svc.Update(context.Background(), created.ID, tc.in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, _ := newProductFixture(t)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Price: floatPtr(9)})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_ReturnsSnapshot(t *testing.T) {
	svc, repo := newProductFixture(t)
	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Café", Price: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != created.ID || deleted.Name != "Café" {
		t.Fatalf("unexpected snapshot: %+v", deleted)
	}
	if len(repo.products) != 0 {
		t.Fatalf("product still present after delete")
	}

	if _, err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
