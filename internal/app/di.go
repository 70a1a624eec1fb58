package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	"github.com/you-humble/pc-builder/internal/config"
	"github.com/you-humble/pc-builder/internal/converter"
	buildrepo "github.com/you-humble/pc-builder/internal/repository/build"
	partrepo "github.com/you-humble/pc-builder/internal/repository/part"
	buildservice "github.com/you-humble/pc-builder/internal/service/build"
	catalogservice "github.com/you-humble/pc-builder/internal/service/catalog"
	catalogconsumer "github.com/you-humble/pc-builder/internal/service/consumer/catalog"
	buildproducer "github.com/you-humble/pc-builder/internal/service/producer/build"
	thttp "github.com/you-humble/pc-builder/internal/transport/http/build/v1"
	"github.com/you-humble/pc-builder/platform/closer"
	"github.com/you-humble/pc-builder/platform/db/migrator"
	"github.com/you-humble/pc-builder/platform/grpc/health"
	"github.com/you-humble/pc-builder/platform/grpc/interceptors"
	"github.com/you-humble/pc-builder/platform/kafka"
	"github.com/you-humble/pc-builder/platform/kafka/consumer"
	"github.com/you-humble/pc-builder/platform/kafka/middleware"
	"github.com/you-humble/pc-builder/platform/kafka/producer"
	"github.com/you-humble/pc-builder/platform/logger"
)

type PartRepository interface {
	catalogservice.PartRepository
	partrepo.BatchCreator
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type Converter interface {
	catalogconsumer.Converter
	buildproducer.Converter
}

type CatalogService interface {
	thttp.CatalogService
	buildservice.CatalogProvider
	catalogconsumer.Service
	Loaded() bool
}

type CatalogConsumer interface {
	RunCatalogUpdatedConsume(ctx context.Context) error
}

type Handler interface {
	Routes(r chi.Router)
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection
	partRepo   PartRepository

	dbPool    *pgxpool.Pool
	migrator  *migrator.Migrator
	buildRepo buildservice.BuildRepository

	consumerGroup          sarama.ConsumerGroup
	catalogUpdatedConsumer kafka.Consumer
	catalogConsumer        CatalogConsumer

	syncProducer            sarama.SyncProducer
	buildCheckedOutProducer kafka.Producer
	buildProducer           buildservice.CheckoutSender

	conv Converter

	catalogService CatalogService
	buildService   thttp.BuildService
	handler        Handler

	router     *chi.Mux
	grpcServer *grpc.Server
	grpcHealth *grpchealth.Server
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) PartsCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.PartsCollection())
	}

	return d.collection
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.partRepo == nil {
		d.partRepo = partrepo.NewPartRepository(d.PartsCollection(ctx))
	}

	return d.partRepo
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) BuildRepository(ctx context.Context) buildservice.BuildRepository {
	if d.buildRepo == nil {
		d.buildRepo = buildrepo.NewBuildRepository(d.DBPool(ctx))
	}

	return d.buildRepo
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.CatalogUpdatedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) CatalogUpdatedConsumer(ctx context.Context) kafka.Consumer {
	if d.catalogUpdatedConsumer == nil {
		d.catalogUpdatedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.CatalogUpdatedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.catalogUpdatedConsumer
}

func (d *di) CatalogConsumer(ctx context.Context) CatalogConsumer {
	if d.catalogConsumer == nil {
		d.catalogConsumer = catalogconsumer.NewCatalogConsumer(
			d.CatalogUpdatedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.CatalogService(ctx),
		)
	}

	return d.catalogConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.BuildCheckedOutProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) BuildCheckedOutProducer(ctx context.Context) kafka.Producer {
	if d.buildCheckedOutProducer == nil {
		d.buildCheckedOutProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.BuildCheckedOutTopic(),
			logger.L(),
		)
	}

	return d.buildCheckedOutProducer
}

func (d *di) BuildProducer(ctx context.Context) buildservice.CheckoutSender {
	if d.buildProducer == nil {
		d.buildProducer = buildproducer.NewBuildProducer(
			d.BuildCheckedOutProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.buildProducer
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogservice.NewCatalogService(
			d.PartRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) BuildService(ctx context.Context) thttp.BuildService {
	if d.buildService == nil {
		d.buildService = buildservice.NewBuildService(
			d.BuildRepository(ctx),
			d.CatalogService(ctx),
			d.BuildProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.buildService
}

func (d *di) BuildHandler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewBuildHandler(
			d.BuildService(ctx),
			d.CatalogService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

// GRPCServer serves the standard health and reflection services only.
func (d *di) GRPCServer(_ context.Context) *grpc.Server {
	if d.grpcServer == nil {
		d.grpcServer = grpc.NewServer(
			grpc.UnaryInterceptor(interceptors.UnaryLogging(logger.L())),
		)
		d.grpcHealth = health.RegisterService(d.grpcServer)
		reflection.Register(d.grpcServer)
	}

	return d.grpcServer
}

// GRPCHealth is valid after GRPCServer.
func (d *di) GRPCHealth(ctx context.Context) *grpchealth.Server {
	d.GRPCServer(ctx)
	return d.grpcHealth
}
