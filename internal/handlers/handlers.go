// Package handlers registers the REST surface over the café resources.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ltavares/go-cafeteria-api/internal/aws"
	"github.com/ltavares/go-cafeteria-api/internal/customers"
	"github.com/ltavares/go-cafeteria-api/internal/orders"
	"github.com/ltavares/go-cafeteria-api/internal/products"
	"github.com/ltavares/go-cafeteria-api/internal/sequence"
	"github.com/ltavares/go-cafeteria-api/internal/validation"
)

// Config groups the dependencies the handlers need.
type Config struct {
	DynamoDB       aws.DynamoDBAPI
	SQS            aws.SQSAPI
	ProductsTable  string
	CustomersTable string
	OrdersTable    string
	CountersTable  string
	QueueURL       string
	Logger         *logrus.Logger
}

// Register wires stores, the order service and routes onto the engine.
func Register(r *gin.Engine, cfg Config) {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	v := validation.New()
	seq := sequence.NewAllocator(cfg.DynamoDB, cfg.CountersTable)
	productStore := products.NewStore(cfg.DynamoDB, cfg.ProductsTable, seq)
	customerStore := customers.NewStore(cfg.DynamoDB, cfg.CustomersTable, seq)
	orderStore := orders.NewStore(cfg.DynamoDB, cfg.OrdersTable, seq)
	orderService := orders.NewService(customerStore, productStore, orderStore)

	// The order-created event feed is optional; without a queue URL the API
	// simply does not publish.
	var publisher *aws.Publisher
	if cfg.QueueURL != "" {
		publisher = aws.NewPublisher(cfg.SQS, cfg.QueueURL)
	}

	registerProductRoutes(r.Group("/api/produtos"), v, productStore)
	registerCustomerRoutes(r.Group("/api/clientes"), v, customerStore)
	registerOrderRoutes(r.Group("/api/pedidos"), v, orderStore, orderService, publisher, log)
}
