package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/ltavares/go-cafeteria-api/internal/products"
	"github.com/ltavares/go-cafeteria-api/internal/validation"
)

func registerProductRoutes(g *gin.RouterGroup, v *validatorv10.Validate, store *products.Store) {
	g.GET("", func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			respondError(c, "Erro ao listar produtos", err)
			return
		}
		c.JSON(http.StatusOK, listResponse(len(list), list))
	})

	g.GET("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		p, err := store.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, "Erro ao buscar produto", err)
			return
		}
		if p == nil {
			respondNotFound(c, "Produto não encontrado")
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Data: p})
	})

	g.POST("", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, v, "Nome, categoria e preço são obrigatórios"); err != nil {
			return
		}

		created, err := store.Insert(c.Request.Context(), products.Product{
			Name:        req.Name,
			Category:    req.Category,
			Price:       req.Price,
			Description: req.Description,
			Stock:       req.Stock,
		})
		if err != nil {
			respondError(c, "Erro ao criar produto", err)
			return
		}
		c.JSON(http.StatusCreated, Response{Success: true, Message: "Produto criado com sucesso", Data: created})
	})

	g.PUT("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req validation.UpdateProductRequest
		if err := validation.BindAndValidate(c, &req, v, "Dados inválidos"); err != nil {
			return
		}

		updated, err := store.Update(c.Request.Context(), id, products.Patch{
			Name:        req.Name,
			Category:    req.Category,
			Price:       req.Price,
			Description: req.Description,
			Stock:       req.Stock,
		})
		if errors.Is(err, products.ErrNotFound) {
			respondNotFound(c, "Produto não encontrado")
			return
		}
		if err != nil {
			respondError(c, "Erro ao atualizar produto", err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Produto atualizado com sucesso", Data: updated})
	})

	g.DELETE("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		removed, err := store.Delete(c.Request.Context(), id)
		if errors.Is(err, products.ErrNotFound) {
			respondNotFound(c, "Produto não encontrado")
			return
		}
		if err != nil {
			respondError(c, "Erro ao deletar produto", err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Message: "Produto removido com sucesso", Data: removed})
	})
}
