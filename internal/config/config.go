package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/pc-builder/internal/config/env"
)

var cfg *config

type config struct {
	Server   Server
	GRPC     Client
	Logger   Logger
	Mongo    Mongo
	Postgres Postgres
	Kafka    Kafka
	Catalog  Catalog
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	grpcCfg, err := envconfig.NewGRPCConfig()
	if err != nil {
		return fmt.Errorf("%s GRPC: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return fmt.Errorf("%s Catalog: %w", op, err)
	}

	cfg = &config{
		Server:   serverCfg,
		GRPC:     grpcCfg,
		Logger:   loggerCfg,
		Mongo:    mongoCfg,
		Postgres: postgresCfg,
		Kafka:    kafkaCfg,
		Catalog:  catalogCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
