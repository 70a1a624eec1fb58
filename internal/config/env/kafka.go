package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                  []string `env:"KAFKA_BROKERS,required"`
	BuildCheckedOutTopicName string   `env:"BUILD_CHECKED_OUT_TOPIC_NAME" envDefault:"build.checked_out"`
	CatalogUpdatedTopicName  string   `env:"CATALOG_UPDATED_TOPIC_NAME" envDefault:"catalog.updated"`
	ConsumerGroupID          string   `env:"CATALOG_UPDATED_CONSUMER_GROUP_ID" envDefault:"pc-builder"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string            { return cfg.raw.Brokers }
func (cfg *kafka) BuildCheckedOutTopic() string { return cfg.raw.BuildCheckedOutTopicName }
func (cfg *kafka) CatalogUpdatedTopic() string  { return cfg.raw.CatalogUpdatedTopicName }
func (cfg *kafka) ConsumerGroupID() string      { return cfg.raw.ConsumerGroupID }

// CatalogUpdatedConsumerConfig reads from the newest offset: a restarted
// instance loads a fresh catalog anyway.
func (cfg *kafka) CatalogUpdatedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	return config
}

func (cfg *kafka) BuildCheckedOutProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
