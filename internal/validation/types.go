package validation

// Request payloads. JSON names follow the API wire format; update payloads
// use pointer fields so absent and zero-valued fields stay distinguishable.

// CreateProductRequest is the payload for POST /api/produtos.
type CreateProductRequest struct {
	Name        string  `json:"nome" validate:"required"`
	Category    string  `json:"categoria" validate:"required"`
	Price       float64 `json:"preco" validate:"required,gt=0"`
	Description string  `json:"descricao"`
	Stock       int     `json:"estoque" validate:"gte=0"`
}

// UpdateProductRequest is the sparse payload for PUT /api/produtos/:id.
type UpdateProductRequest struct {
	Name        *string  `json:"nome" validate:"omitempty,min=1"`
	Category    *string  `json:"categoria" validate:"omitempty,min=1"`
	Price       *float64 `json:"preco" validate:"omitempty,gt=0"`
	Description *string  `json:"descricao"`
	Stock       *int     `json:"estoque" validate:"omitempty,gte=0"`
}

// CreateCustomerRequest is the payload for POST /api/clientes.
// Email is required but not checked for format.
type CreateCustomerRequest struct {
	Name  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"telefone"`
}

// UpdateCustomerRequest is the sparse payload for PUT /api/clientes/:id.
// The registration date is immutable and has no field here.
type UpdateCustomerRequest struct {
	Name  *string `json:"nome" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,min=1"`
	Phone *string `json:"telefone"`
}

// OrderItemRequest is one requested line item: a product reference and a
// positive quantity. The unit price is never client-supplied.
type OrderItemRequest struct {
	ProductID int64 `json:"produtoId" validate:"required,gt=0"`
	Quantity  int   `json:"quantidade" validate:"required,gt=0"`
}

// CreateOrderRequest is the payload for POST /api/pedidos.
type CreateOrderRequest struct {
	CustomerID int64              `json:"clienteId" validate:"required,gt=0"`
	Items      []OrderItemRequest `json:"itens" validate:"required,min=1,dive"`
}

// UpdateOrderRequest is the sparse payload for PUT /api/pedidos/:id. Only
// the status tag is mutable after creation.
type UpdateOrderRequest struct {
	Status *string `json:"status" validate:"omitempty,min=1"`
}
