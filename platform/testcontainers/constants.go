package testcontainers

// Images used by the integration suites.
const (
	MongoImage    = "mongo:8.2.3"
	PostgresImage = "postgres:17.0-alpine3.20"
	KafkaImage    = "confluentinc/cp-kafka:7.6.1"

	MongoPort    = "27017"
	PostgresPort = "5432"
)
