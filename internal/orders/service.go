package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/copilot-skills-example/octocat-supply-api/internal/catalog"
	kafkax "github.com/copilot-skills-example/octocat-supply-api/internal/kafka"
	"github.com/copilot-skills-example/octocat-supply-api/internal/storage"
	"github.com/copilot-skills-example/octocat-supply-api/internal/validate"
)

// ErrInvalidTransition is returned when a status update would skip or
// reverse the order lifecycle.
var ErrInvalidTransition = errors.New("invalid status transition")

// ProductNotFoundError reports the first unresolvable productId in a cart.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// ProductResolver is satisfied by *storage.Table[catalog.Product].
type ProductResolver interface {
	GetByID(ctx context.Context, id int64) (*catalog.Product, error)
}

type Store interface {
	CreateOrderTx(ctx context.Context, o *Order, details []OrderDetail) error
	OrderByID(ctx context.Context, id int64) (*Order, error)
	DetailsByOrder(ctx context.Context, orderID int64) ([]OrderDetail, error)
	ListOrders(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Service struct {
	products ProductResolver
	store    Store
	pub      Publisher
	producer string
	log      *logrus.Entry
	now      func() time.Time
}

func NewService(products ProductResolver, store Store, pub Publisher, producer string, log *logrus.Entry) *Service {
	return &Service{
		products: products,
		store:    store,
		pub:      pub,
		producer: producer,
		log:      log,
		now:      time.Now,
	}
}

// CreateFromCart validates the cart, resolves every product in input order,
// then writes the order and its details in one transaction. The unit price
// on each detail is the product price as resolved here, before the
// transaction opens; a price change racing the commit is accepted.
func (s *Service) CreateFromCart(ctx context.Context, req CartOrderRequest) (*CartOrderResponse, error) {
	if err := validate.Required("branchId", req.BranchID != 0); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, validate.Errorf("items array must not be empty")
	}
	for _, it := range req.Items {
		if err := validate.Min("quantity", it.Quantity, 1); err != nil {
			return nil, err
		}
	}

	// Resolve in input order, aborting on the first missing product.
	resolved := make([]*catalog.Product, 0, len(req.Items))
	for _, it := range req.Items {
		p, err := s.products.GetByID(ctx, it.ProductID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &ProductNotFoundError{ProductID: it.ProductID}
		}
		if err != nil {
			return nil, fmt.Errorf("resolve product %d: %w", it.ProductID, err)
		}
		resolved = append(resolved, p)
	}

	order := &Order{
		BranchID:  req.BranchID,
		OrderDate: s.now().UTC(),
		Status:    StatusPending,
	}
	details := make([]OrderDetail, 0, len(req.Items))
	for i, it := range req.Items {
		details = append(details, OrderDetail{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: resolved[i].Price,
		})
	}

	if err := s.store.CreateOrderTx(ctx, order, details); err != nil {
		return nil, err
	}

	// Re-read the committed row before assembling the response.
	committed, err := s.store.OrderByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	resp := &CartOrderResponse{Order: *committed, Details: make([]CartOrderDetail, 0, len(details))}
	for i, d := range details {
		resp.Details = append(resp.Details, CartOrderDetail{OrderDetail: d, Product: resolved[i]})
	}

	s.publishCreated(resp)
	return resp, nil
}

// GetCart returns the order with its details, each embedding the product row.
func (s *Service) GetCart(ctx context.Context, id int64) (*CartOrderResponse, error) {
	o, err := s.store.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.store.DetailsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &CartOrderResponse{Order: *o, Details: make([]CartOrderDetail, 0, len(details))}
	for _, d := range details {
		p, err := s.products.GetByID(ctx, d.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolve product %d: %w", d.ProductID, err)
		}
		resp.Details = append(resp.Details, CartOrderDetail{OrderDetail: d, Product: p})
	}
	return resp, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.store.ListOrders(ctx)
}

// UpdateStatus moves the order along the lifecycle; illegal jumps are
// rejected with ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	if err := validate.OneOf("status", status, KnownStatuses()...); err != nil {
		return nil, err
	}
	o, err := s.store.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, status) {
		return nil, ErrInvalidTransition
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

// publishCreated emits the OrderCreated event after commit. Fire-and-forget:
// a publish problem never fails the request.
func (s *Service) publishCreated(resp *CartOrderResponse) {
	if s.pub == nil {
		return
	}
	items := make([]ItemPrice, 0, len(resp.Details))
	var total float64
	for _, d := range resp.Details {
		items = append(items, ItemPrice{ProductID: d.ProductID, Quantity: d.Quantity, UnitPrice: d.UnitPrice})
		total += d.UnitPrice * float64(d.Quantity)
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    s.now().UTC(),
		Producer:      s.producer,
		CorrelationID: fmt.Sprintf("%d", resp.ID),
	}
	ev.Payload = kafkax.MustMarshal(OrderCreatedPayload{
		OrderID:  resp.ID,
		BranchID: resp.BranchID,
		Items:    items,
		Total:    total,
	})
	s.pub.Publish(PartitionKey(resp.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	s.log.WithFields(logrus.Fields{"order_id": resp.ID, "event": EventOrderCreated}).Debug("event published")
}
