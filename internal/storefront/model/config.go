package model

import "time"

// ================ Config ================
type CartConfig struct {
	TTL              time.Duration `envconfig:"CART_TTL" default:"168h"`
	KeyPrefix        string        `envconfig:"CART_KEY_PREFIX" default:"cart"`
	MaxUpdateRetries int           `envconfig:"CART_MAX_UPDATE_RETRIES" default:"5"`
}

type CatalogConfig struct {
	Fixture string `envconfig:"CATALOG_FIXTURE"`
}
