package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Client interface {
	Host() string
	Port() int
	Address() string
}

type Server interface {
	Client
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Mongo interface {
	DatabaseName() string
	PartsCollection() string
	DSN() string
}

type Postgres interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Brokers() []string
	BuildCheckedOutTopic() string
	CatalogUpdatedTopic() string
	ConsumerGroupID() string
	CatalogUpdatedConsumerConfig() *sarama.Config
	BuildCheckedOutProducerConfig() *sarama.Config
}

type Catalog interface {
	Bootstrap() bool
}
