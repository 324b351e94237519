package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ltavares/go-cafeteria-api/internal/aws"
	"github.com/ltavares/go-cafeteria-api/internal/config"
	"github.com/ltavares/go-cafeteria-api/internal/handlers"
)

func setupRouter(cfg handlers.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(requestID())
	r.Use(accessLog(cfg.Logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"mensagem": "Bem-vindo à API da Cafeteria ☕",
			"versao":   "1.0.0",
			"endpoints": gin.H{
				"produtos": "/api/produtos",
				"clientes": "/api/clientes",
				"pedidos":  "/api/pedidos",
			},
		})
	})

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.Register(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{Message: "Rota não encontrada"})
	})

	return r
}

// requestID echoes the caller's X-Request-Id or assigns one, so API logs,
// queue messages and worker logs line up per request.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set("X-Request-Id", id)
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func accessLog(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetHeader("X-Request-Id"),
		}).Info("request")
	}
}

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.RunLocal {
		// CloudWatch Logs gets structured lines; local runs keep text.
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	clients, err := aws.NewClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	hcfg := handlers.Config{
		DynamoDB:       clients.DynamoDB,
		SQS:            clients.SQS,
		ProductsTable:  cfg.ProductsTable,
		CustomersTable: cfg.CustomersTable,
		OrdersTable:    cfg.OrdersTable,
		CountersTable:  cfg.CountersTable,
		QueueURL:       cfg.OrdersQueueURL,
		Logger:         log,
	}

	r := setupRouter(hcfg)

	if cfg.RunLocal {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.WithField("addr", addr).Info("running local server")
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
