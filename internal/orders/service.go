package orders

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ltavares/go-cafeteria-api/internal/customers"
	"github.com/ltavares/go-cafeteria-api/internal/products"
)

// ErrCustomerNotFound signals that the order's customer reference did not
// resolve.
var ErrCustomerNotFound = errors.New("cliente não encontrado")

// ProductNotFoundError names the first line-item product reference that did
// not resolve.
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("produto %d não encontrado", e.ID)
}

// CustomerDirectory resolves customer references. Get returns (nil, nil)
// when the customer does not exist.
type CustomerDirectory interface {
	Get(ctx context.Context, id int64) (*customers.Customer, error)
}

// ProductCatalog resolves product references and current unit prices. Get
// returns (nil, nil) when the product does not exist.
type ProductCatalog interface {
	Get(ctx context.Context, id int64) (*products.Product, error)
}

// ItemRequest is one requested line item before pricing.
type ItemRequest struct {
	ProductID int64
	Quantity  int
}

// Service runs the order-creation workflow: customer check, per-item price
// resolution, assembly, persistence. Each step is a separate store call with
// no transaction spanning them; a product deleted between its lookup and the
// final insert still ends up priced in the order.
type Service struct {
	customers CustomerDirectory
	products  ProductCatalog
	store     *Store
	nowFunc   func() time.Time
}

// NewService wires the workflow's collaborators.
func NewService(customerDir CustomerDirectory, catalog ProductCatalog, store *Store) *Service {
	return &Service{
		customers: customerDir,
		products:  catalog,
		store:     store,
		nowFunc:   time.Now,
	}
}

// Create validates the customer, resolves and prices each item in input
// order (the first unresolved product aborts the whole operation), assembles
// the order and persists it. No retries; any failure leaves nothing written.
func (s *Service) Create(ctx context.Context, customerID int64, items []ItemRequest) (*Order, error) {
	cust, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("lookup customer %d: %w", customerID, err)
	}
	if cust == nil {
		return nil, ErrCustomerNotFound
	}

	priced := make([]LineItem, 0, len(items))
	for _, it := range items {
		prod, err := s.products.Get(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("lookup product %d: %w", it.ProductID, err)
		}
		if prod == nil {
			return nil, &ProductNotFoundError{ID: it.ProductID}
		}
		priced = append(priced, LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: prod.Price,
		})
	}

	order := assemble(customerID, priced, s.nowFunc())

	created, err := s.store.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return created, nil
}

// assemble builds the priced order record. Pure: no I/O, no validation.
// The total is rounded to cents once here (half away from zero); the unit
// prices captured in the line items are the snapshot the order keeps for
// good.
func assemble(customerID int64, items []LineItem, now time.Time) Order {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}

	return Order{
		CustomerID: customerID,
		Items:      items,
		Total:      roundCents(total),
		Status:     StatusPending,
		CreatedAt:  now.UTC(),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
