package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort        string `env:"SERVICE_PORT" envDefault:"3030"`
	MetricsPort        string `env:"METRICS_PORT"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	PostgreSQLConfig   PostgreSQLConfig
	JWTConfig          JWTConfig
	StockServiceConfig StockServiceConfig
	OutboxConfig       OutboxConfig
	TracingConfig      TracingConfig
}

type PostgreSQLConfig struct {
	DBHost     string `env:"DATABASE_HOST,required"`
	DBPort     string `env:"DATABASE_PORT" envDefault:"5432"`
	DBUsername string `env:"DATABASE_USER,required"`
	DBPassword string `env:"DATABASE_PASSWORD,required"`
	DBName     string `env:"DATABASE_NAME,required"`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET,required"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"10m"`
}

type StockServiceConfig struct {
	Host    string        `env:"STOCK_SERVICE_HOST,required"`
	Timeout time.Duration `env:"STOCK_SERVICE_TIMEOUT" envDefault:"10s"`
}

type OutboxConfig struct {
	Interval  time.Duration `env:"OUTBOX_INTERVAL" envDefault:"10s"`
	BatchSize int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`

	// IdleFor is how long an event must go untouched before the dispatcher
	// claims it. It has to outlast an inline provisioning call.
	IdleFor time.Duration `env:"OUTBOX_IDLE_FOR" envDefault:"30s"`
}

type TracingConfig struct {
	CollectorHost string `env:"COLLECTOR_HOST"`
}

func CreateNewConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}
