package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/project/dbcentral/config"
	"github.com/project/dbcentral/db"
	"github.com/project/dbcentral/internal/database"
	"github.com/project/dbcentral/internal/usecase/library"
	"github.com/project/dbcentral/internal/usecase/repository"
	"github.com/project/dbcentral/pkg/tracer"
)

const shutDownSeconds = 3

// Service is a fully wired library over an open database session:
// migrated schema, transactional facade, retry budget from the config.
type Service struct {
	Authors library.AuthorUseCase
	Books   library.BooksUseCase

	manager     *database.Manager
	flushTracer func(ctx context.Context) error
	logger      *zap.Logger
}

// Build opens the database, applies migrations and assembles the facade.
// The caller owns the returned service and must Close it.
func Build(ctx context.Context, logger *zap.Logger, cfg *config.Config) (*Service, error) {
	s := &Service{logger: logger}

	if cfg.Observability.JaegerURL != "" {
		flush, err := tracer.Setup(logger, cfg.Observability.JaegerURL, "dbcentral")
		if err != nil {
			logger.Error("can not setup tracing", zap.Error(err))
			return nil, err
		}
		s.flushTracer = flush
	}

	var logDatabase *zap.Logger
	if cfg.Log.LogDatabase {
		logDatabase = logger
	}
	retryCfg := database.RetryConfig{
		Attempts: cfg.Retry.Attempts,
		Delay:    cfg.Retry.Delay,
	}
	manager, err := database.Open(ctx, logDatabase, cfg.PG.URL, retryCfg)
	if err != nil {
		logger.Error("can not open database", zap.Error(err))
		return nil, err
	}
	s.manager = manager

	if err = db.SetupPostgres(manager.PgxPool(), logger); err != nil {
		logger.Error("can not setup database schema", zap.Error(err))
		manager.Close()
		return nil, err
	}

	var logRepo *zap.Logger
	if cfg.Log.LogRepository {
		logRepo = logger
	}
	repo := repository.New(logRepo, manager)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	}
	transactor := repository.NewTransactor(logTransactor, manager)

	var logLibrary *zap.Logger
	if cfg.Log.LogLibrary {
		logLibrary = logger
	}
	useCases := library.New(logLibrary, repo, repo, transactor, manager.Retry())

	s.Authors = useCases
	s.Books = useCases
	return s, nil
}

// Close is idempotent: the manager refuses further work after the first
// call and flushing the tracer twice is harmless.
func (s *Service) Close(ctx context.Context) {
	if s.manager != nil {
		s.manager.Close()
	}

	if s.flushTracer != nil {
		if err := s.flushTracer(ctx); err != nil {
			s.logger.Error("can not flush tracer", zap.Error(err))
		}
	}
}

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	service, err := Build(ctx, logger, cfg)
	if err != nil {
		return
	}
	defer service.Close(context.Background())

	// Connectivity smoke check: a pair of counts through the full
	// facade path, retry and transaction scope included.
	authors, err := service.Authors.CountAuthors(ctx)
	if err != nil {
		logger.Error("health check failed", zap.Error(err))
		return
	}

	books, err := service.Books.CountBooks(ctx)
	if err != nil {
		logger.Error("health check failed", zap.Error(err))
		return
	}

	logger.Info("library ready",
		zap.Int64("authors", authors),
		zap.Int64("books", books))

	<-ctx.Done()
	time.Sleep(time.Second * shutDownSeconds)
}
