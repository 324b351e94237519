package orders

import "time"

// Order statuses. The set is open: PUT accepts any non-empty tag, these are
// the conventional values.
const (
	StatusPending   = "pendente"
	StatusCompleted = "concluído"
	StatusCanceled  = "cancelado"
)

// LineItem is one product/quantity pair within an order. UnitPrice is the
// product's price captured when the order was created; later product price
// changes never touch it.
type LineItem struct {
	ProductID int64   `json:"produtoId" dynamodbav:"produtoId"`
	Quantity  int     `json:"quantidade" dynamodbav:"quantidade"`
	UnitPrice float64 `json:"precoUnitario" dynamodbav:"precoUnitario"`
}

// Order is a priced, persisted order. Total is derived at creation and never
// recomputed from live product prices.
type Order struct {
	ID         int64      `json:"id" dynamodbav:"id"`
	CustomerID int64      `json:"clienteId" dynamodbav:"clienteId"`
	Items      []LineItem `json:"itens" dynamodbav:"itens"`
	Total      float64    `json:"valorTotal" dynamodbav:"valorTotal"`
	Status     string     `json:"status" dynamodbav:"status"`
	CreatedAt  time.Time  `json:"data" dynamodbav:"data"`
}

// Patch carries the only mutable order field. Items, total and the customer
// reference are fixed at creation.
type Patch struct {
	Status *string
}
