package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Storage backend selectors.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StoreBackend selects where entities live: "memory" (default; data is
	// lost on restart) or "mongo".
	StoreBackend string `env:"STORE_BACKEND, default=memory"`

	// StrictCustomSplits rejects custom bill splits whose amounts do not sum
	// to the total. Disable to restore the permissive legacy behavior.
	StrictCustomSplits bool `env:"BILLSPLIT_STRICT_CUSTOM, default=true"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Billing BillingConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=safespend"`
}

type RedisConfig struct {
	// Enabled switches webhook dedup to Redis; when false a process-local
	// replay store is used instead.
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

type BillingConfig struct {
	// BaseURL is the origin stamped onto stub checkout/portal session URLs.
	BaseURL string `env:"BILLING_BASE_URL, default=https://billing.example.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
