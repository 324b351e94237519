package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"sucesso"`
	Count   *int        `json:"quantidade,omitempty"`
	Message string      `json:"mensagem,omitempty"`
	Data    interface{} `json:"dados,omitempty"`
	Error   string      `json:"erro,omitempty"`
}

// listResponse includes the item count, as list endpoints always do.
func listResponse(count int, data interface{}) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// respondError writes the 500 envelope: a fixed message plus the underlying
// error text in erro.
func respondError(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Message: msg,
		Error:   err.Error(),
	})
}

// respondNotFound writes the 404 envelope.
func respondNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Message: msg})
}

// pathID parses the :id path segment. Non-numeric or non-positive input is
// a caller error; pathID writes the 400 and reports ok=false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, Response{Message: "ID inválido"})
		return 0, false
	}
	return id, true
}
