package customers

// Customer is a registered café customer. RegisteredAt is a date-only string
// (YYYY-MM-DD) stamped at creation and never patched afterwards.
type Customer struct {
	ID           int64  `json:"id" dynamodbav:"id"`
	Name         string `json:"nome" dynamodbav:"nome"`
	Email        string `json:"email" dynamodbav:"email"`
	Phone        string `json:"telefone" dynamodbav:"telefone"`
	RegisteredAt string `json:"dataCadastro" dynamodbav:"dataCadastro"`
}

// Patch carries a sparse update: only non-nil fields overwrite the stored
// record. The registration date is intentionally absent.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
}
