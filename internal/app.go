package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"file-uploader/config"
	"file-uploader/internal/application/ports"
	"file-uploader/internal/application/services"
	"file-uploader/internal/infrastructure/db/postgres"
	"file-uploader/internal/infrastructure/db/postgres/file"
	"file-uploader/internal/infrastructure/db/postgres/folder"
	"file-uploader/internal/infrastructure/db/postgres/user"
	"file-uploader/internal/infrastructure/jwt"
	"file-uploader/internal/infrastructure/metrics"
	"file-uploader/internal/infrastructure/mq"
	"file-uploader/internal/infrastructure/s3"
	"file-uploader/internal/interface/web"
	"file-uploader/internal/interface/web/middleware"
	"file-uploader/internal/interface/web/templates"
	"file-uploader/pkg/rmqconsumer"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	blobs      ports.BlobStorage
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
	reconciler *services.Reconciler
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file, using process environment", zap.Error(err))
	}
	cfg := config.Load()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))
	r.Use(middleware.ErrorHandler(logger))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config: %w", err)
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(ctx, logger, dbPool); err != nil {
		dbPool.Close()
		return nil, err
	}

	// s3
	s3Client, err := s3.New(ctx, logger, cfg.S3)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("RabbitMQ config: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		dbPool.Close()
		return nil, err
	}
	if err = rbMQ.Init(); err != nil {
		dbPool.Close()
		_ = rbMQ.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	// rmqConsumer removes the blobs the publisher reports as orphaned
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, s3Client)
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		dbPool.Close()
		_ = rbMQ.Close()
		return nil, err
	}
	if err = rmqConsumer.Init(); err != nil {
		dbPool.Close()
		_ = rbMQ.Close()
		return nil, fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		blobs:      s3Client,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			a.logger.Warn("rabbitMQ close", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	if a.reconciler != nil {
		g.Go(func() error {
			a.reconciler.Worker(ctx, a.cfg.S3.SweepInterval)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	folderRepo := folder.NewRepository(a.db)
	fileRepo := file.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtService, a.cfg.App.SessionTTL, a.mCounter)
	userService := services.NewUserService(userRepo, a.mCounter)
	folderService := services.NewFolderService(a.logger, folderRepo, fileRepo, a.blobs, a.mq, a.mCounter)
	fileService := services.NewFileService(a.logger, fileRepo, a.blobs, a.mq, a.mCounter)
	a.reconciler = services.NewReconciler(a.logger, fileRepo, a.blobs, a.cfg.S3.SweepGrace, a.mCounter)

	cookie := middleware.CookieConfig{
		TTL:    a.cfg.App.SessionTTL,
		Secure: a.cfg.App.SecureCookie,
	}
	a.router.Use(middleware.Session(authService, cookie, a.logger))

	// ops
	a.router.GET(web.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(web.RouteMetrics, gin.WrapH(promhttp.Handler()))

	// controllers
	web.NewAuthController(a.router, a.logger, userService, authService, cookie)
	web.NewFolderController(a.router, a.logger, folderService)
	web.NewFileController(a.router, a.logger, folderService, fileService)
}

func (a *App) Logger() *zap.Logger { return a.logger }
