package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/ltavares/go-cafeteria-api/internal/aws"
	"github.com/ltavares/go-cafeteria-api/internal/config"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.RunLocal {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	clients, err := aws.NewClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	processor := NewProcessor(aws.NewMetricsEmitter(clients.CloudWatch, cfg.MetricsNamespace), log)

	// If RUN_LOCAL=true, simulate a single SQS event instead of starting the
	// Lambda runtime.
	if cfg.RunLocal {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			body = `{"pedidoId":1,"clienteId":1,"valorTotal":15.5}`
		}
		ev := events.SQSEvent{
			Records: []events.SQSMessage{{Body: body}},
		}
		if err := processor.Handle(context.Background(), ev); err != nil {
			log.Fatalf("local handler error: %v", err)
		}
		return
	}

	lambda.Start(processor.Handle)
}
