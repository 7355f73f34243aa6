package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort         string `env:"SERVICE_PORT" envDefault:"3010"`
	MetricsPort         string `env:"METRICS_PORT"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret           string `env:"JWT_SECRET,required"`
	GuardStockMutations bool   `env:"STOCK_GUARD_MUTATIONS" envDefault:"false"`
	MongoDBConfig       MongoDBConfig
	KafkaConfig         KafkaConfig
	TracingConfig       TracingConfig
}

type MongoDBConfig struct {
	URI    string `env:"MONGO_URI,required"`
	DBName string `env:"MONGO_DB_NAME" envDefault:"stock"`
}

type KafkaConfig struct {
	BrokerAddress string `env:"BROKER_ADDRESS"`
	BrokerTopic   string `env:"BROKER_TOPIC" envDefault:"stock-events"`
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
