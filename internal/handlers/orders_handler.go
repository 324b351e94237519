package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ltavares/go-cafeteria-api/internal/aws"
	"github.com/ltavares/go-cafeteria-api/internal/orders"
	"github.com/ltavares/go-cafeteria-api/internal/validation"
)

func registerOrderRoutes(g *gin.RouterGroup, v *validatorv10.Validate, store *orders.Store, svc *orders.Service, publisher *aws.Publisher, log *logrus.Logger) {
	g.GET("", func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			respondError(c, "Erro ao listar pedidos", err)
			return
		}
		c.JSON(http.StatusOK, listResponse(len(list), list))
	})

	g.GET("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		o, err := store.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Erro ao buscar pedido", err)
			return
		}
		if o == nil {
			respondNotFound(c, "Pedido não encontrado")
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Data: o})
	})

	g.POST("", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v, "ClienteId e itens são obrigatórios"); err != nil {
			return
		}

		items := make([]orders.ItemRequest, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, orders.ItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
		}

		created, err := svc.Create(ctx, req.CustomerID, items)
		if err != nil {
			var pnf *orders.ProductNotFoundError
			switch {
			case errors.Is(err, orders.ErrCustomerNotFound):
				respondNotFound(c, "Cliente não encontrado")
			case errors.As(err, &pnf):
				respondNotFound(c, fmt.Sprintf("Produto ID %d não encontrado", pnf.ID))
			default:
				respondError(c, "Erro ao criar pedido", err)
			}
			return
		}

		// Best-effort event: the order is already persisted, so a publish
		// failure must not turn the response into an error.
		if publisher != nil {
			ev := aws.OrderCreatedEvent{
				OrderID:    created.ID,
				CustomerID: created.CustomerID,
				Total:      created.Total,
				CreatedAt:  created.CreatedAt,
			}
			if err := publisher.PublishOrderCreated(ctx, ev, c.GetHeader("X-Request-Id")); err != nil {
				log.WithError(err).WithField("pedido_id", created.ID).Warn("failed to publish order-created event")
			}
		}

		c.JSON(http.StatusCreated, Response{Success: true, Message: "Pedido criado com sucesso", Data: created})
	})

	g.PUT("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req validation.UpdateOrderRequest
		if err := validation.BindAndValidate(c, &req, v, "Dados inválidos"); err != nil {
			return
		}

		updated, err := store.Update(c.Request.Context(), id, orders.Patch{Status: req.Status})
		if errors.Is(err, orders.ErrNotFound) {
			respondNotFound(c, "Pedido não encontrado")
			return
		}
		if err != nil {
			respondError(c, "Erro ao atualizar pedido", err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Pedido atualizado com sucesso", Data: updated})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		removed, err := store.Delete(c.Request.Context(), id)
		if errors.Is(err, orders.ErrNotFound) {
			respondNotFound(c, "Pedido não encontrado")
			return
		}
		if err != nil {
			respondError(c, "Erro ao deletar pedido", err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Pedido cancelado com sucesso", Data: removed})
	})
}
