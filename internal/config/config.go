package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, loaded from the environment.
// Table defaults mirror the hosted database table names.
type Config struct {
	Port             int    `envconfig:"PORT" default:"3000"`
	ProductsTable    string `envconfig:"PRODUCTS_TABLE" default:"produtos"`
	CustomersTable   string `envconfig:"CUSTOMERS_TABLE" default:"clientes"`
	OrdersTable      string `envconfig:"ORDERS_TABLE" default:"pedidos"`
	CountersTable    string `envconfig:"COUNTERS_TABLE" default:"contadores"`
	OrdersQueueURL   string `envconfig:"ORDERS_QUEUE_URL"`
	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"CafeteriaAPI"`
	RunLocal         bool   `envconfig:"RUN_LOCAL"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}
