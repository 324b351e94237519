package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/ltavares/go-cafeteria-api/internal/customers"
	"github.com/ltavares/go-cafeteria-api/internal/validation"
)

func registerCustomerRoutes(g *gin.RouterGroup, v *validatorv10.Validate, store *customers.Store) {
	g.GET("", func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			respondError(c, "Erro ao listar clientes", err)
			return
		}
		c.JSON(http.StatusOK, listResponse(len(list), list))
	})

	g.GET("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		cust, err := store.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Erro ao buscar cliente", err)
			return
		}
		if cust == nil {
			respondNotFound(c, "Cliente não encontrado")
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Data: cust})
	})

	g.POST("", func(c *gin.Context) {
		var req validation.CreateCustomerRequest
		if err := validation.BindAndValidate(c, &req, v, "Nome e email são obrigatórios"); err != nil {
			return
		}

		created, err := store.Insert(c.Request.Context(), customers.Customer{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		})
		if err != nil {
			respondError(c, "Erro ao criar cliente", err)
			return
		}
		c.JSON(http.StatusCreated, Response{Success: true, Message: "Cliente criado com sucesso", Data: created})
	})

	g.PUT("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req validation.UpdateCustomerRequest
		if err := validation.BindAndValidate(c, &req, v, "Dados inválidos"); err != nil {
			return
		}

		updated, err := store.Update(c.Request.Context(), id, customers.Patch{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		})
		if errors.Is(err, customers.ErrNotFound) {
			respondNotFound(c, "Cliente não encontrado")
			return
		}
		if err != nil {
			respondError(c, "Erro ao atualizar cliente", err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Cliente atualizado com sucesso", Data: updated})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		removed, err := store.Delete(c.Request.Context(), id)
		if errors.Is(err, customers.ErrNotFound) {
			respondNotFound(c, "Cliente não encontrado")
			return
		}
		if err != nil {
			respondError(c, "Erro ao deletar cliente", err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Cliente removido com sucesso", Data: removed})
	})
}
