package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator used by every handler. Totals are derived
// server-side, so unlike a client-priced API there is no struct-level
// amount cross-check to register.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
