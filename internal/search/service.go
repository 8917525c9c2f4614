package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit applies when the caller omits limit; MaxLimit is the cap.
	DefaultLimit = 10
	MaxLimit     = 20

	// Entity filter values accepted by the API.
	EntityProducts  = "products"
	EntitySuppliers = "suppliers"
	EntityOrders    = "orders"

	// candidate fetch cap per entity; ranking runs over this window
	maxCandidates = 100
)

// Store fetches containment-filtered candidate rows per entity type.
type Store interface {
	ProductCandidates(ctx context.Context, q string, limit int) ([]ProductCandidate, error)
	SupplierCandidates(ctx context.Context, q string, limit int) ([]SupplierCandidate, error)
	OrderCandidates(ctx context.Context, q string, limit int) ([]OrderCandidate, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Suggest returns at most limit ranked suggestions. With an entity filter the
// single entity search runs alone; without one, the three searches run
// concurrently with a per-entity share of the limit and the results are
// interleaved round-robin.
func (s *Service) Suggest(ctx context.Context, query, entity string, limit int) ([]Suggestion, error) {
	switch entity {
	case EntityProducts:
		return s.products(ctx, query, limit)
	case EntitySuppliers:
		return s.suppliers(ctx, query, limit)
	case EntityOrders:
		return s.orders(ctx, query, limit)
	}

	// ceil(limit/3) per entity
	per := (limit + 2) / 3

	var products, suppliers, orders []Suggestion
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.products(gctx, query, per)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = s.suppliers(gctx, query, per)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders(gctx, query, per)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return interleave(limit, products, suppliers, orders), nil
}

func (s *Service) products(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	cands, err := s.store.ProductCandidates(ctx, query, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return rankProducts(cands, query, limit), nil
}

func (s *Service) suppliers(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	cands, err := s.store.SupplierCandidates(ctx, query, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("search suppliers: %w", err)
	}
	return rankSuppliers(cands, query, limit), nil
}

func (s *Service) orders(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	cands, err := s.store.OrderCandidates(ctx, query, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return rankOrders(cands, query, limit), nil
}
