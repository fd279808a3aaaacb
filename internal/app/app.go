package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/automarket-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/automarket-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/automarket-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/automarket-backend/internal/infrastructure/kafka"
	s3Repo "github.com/DRSN-tech/automarket-backend/internal/repository/minio"
	"github.com/DRSN-tech/automarket-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/automarket-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/automarket-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/automarket-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/automarket-backend/internal/usecase"
	"github.com/DRSN-tech/automarket-backend/pkg/clients"
	"github.com/DRSN-tech/automarket-backend/pkg/closer"
	"github.com/DRSN-tech/automarket-backend/pkg/e"
	"github.com/DRSN-tech/automarket-backend/pkg/logger"
	"github.com/DRSN-tech/automarket-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает хранилища, бизнес-логику и серверные поверхности.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	db          *postgres.PgDatabase
	redisClient *clients.RedisClient
	producer    *kafka.Producer
	worker      *kafka.OutboxWorker

	listingUC   usecase.ListingUC
	promotionUC usecase.PromotionUC
	rebuildUC   usecase.RebuildUC

	grpcSrv *v1Grpc.GRPCServer
	httpSrv *v1Http.Server
	router  *chi.Mux

	closer *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(2 * time.Second),
	}

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.db = db
	a.closer.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	listingConv := pgdbConv.NewListingConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	publicConv := redisConv.NewPublicListingConverterImpl()

	inventoryRepo := pgdb.NewInventoryRepo(db.Pool, listingConv)
	accountRepo := pgdb.NewAccountRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	a.redisClient = clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := a.redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(ctx context.Context) error {
		return a.redisClient.Client.Close()
	})

	publicRepo := redis.NewPublicListingRepo(a.redisClient, publicConv, log)

	syncer := usecase.NewProjectionSyncer(publicRepo, imageRepo, log)
	rebuildUC := usecase.NewRebuildService(inventoryRepo, syncer, log)
	a.rebuildUC = rebuildUC
	a.listingUC = usecase.NewListingUC(inventoryRepo, outboxRepo, publicRepo, syncer, rebuildUC, db.Pool, log)
	a.promotionUC = usecase.NewPromotionUC(orderRepo, inventoryRepo, accountRepo, outboxRepo, db.Pool, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.producer = producer
	a.closer.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	a.worker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc)
	a.grpcSrv.RegisterServices(a.listingUC, a.rebuildUC, log)

	a.router = chi.NewRouter()
	router := v1Http.NewRouter(a.router, log)
	router.Init(a.listingUC, a.promotionUC, a.rebuildUC)
	a.httpSrv = v1Http.NewServer(a.router, cfg.Http)

	return a, nil
}

// Run запускает серверы и outbox-worker и блокируется до сигнала
// завершения либо фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)
	a.closer.Add(func(ctx context.Context) error {
		workerCancel()
		a.worker.Stop()
		return nil
	})

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()
	a.closer.Add(func(ctx context.Context) error {
		return a.grpcSrv.Stop(ctx)
	})

	httpErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
		}
	}()
	a.closer.Add(func(ctx context.Context) error {
		return a.httpSrv.Stop(ctx)
	})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-httpErrCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
