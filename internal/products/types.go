package products

// Product is a catalog item. Attribute and JSON names follow the API wire
// format.
type Product struct {
	ID          int64   `json:"id" dynamodbav:"id"`
	Name        string  `json:"nome" dynamodbav:"nome"`
	Category    string  `json:"categoria" dynamodbav:"categoria"`
	Price       float64 `json:"preco" dynamodbav:"preco"`
	Description string  `json:"descricao" dynamodbav:"descricao"`
	Stock       int     `json:"estoque" dynamodbav:"estoque"`
}

// Patch carries a sparse update: only non-nil fields overwrite the stored
// record.
type Patch struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	Stock       *int
}
