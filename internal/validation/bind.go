package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// errorResponse mirrors the API envelope for the 400s written here.
type errorResponse struct {
	Success bool   `json:"sucesso"`
	Message string `json:"mensagem"`
	Error   string `json:"erro,omitempty"`
}

// BindAndValidate binds the JSON body into out and runs validation. On
// failure it writes a 400 envelope carrying msg (the endpoint's
// required-fields message) and returns the error so the handler can
// short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate, msg string) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: msg,
			Error:   err.Error(),
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: msg,
			Error:   validationDetail(err),
		})
		return err
	}
	return nil
}

// validationDetail flattens validator errors into one line for the erro
// field.
func validationDetail(err error) string {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return err.Error()
	}
	detail := ""
	for i, fe := range ve {
		if i > 0 {
			detail += "; "
		}
		detail += fe.StructNamespace() + ": " + fe.Tag()
	}
	return detail
}
