package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "checkout_webhooks/docs"
	"checkout_webhooks/internal/adapter/http/handlers"
	"checkout_webhooks/internal/adapter/persistence/repository"
	"checkout_webhooks/internal/config"
	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/infrastructure/cache"
	"checkout_webhooks/internal/infrastructure/database"
	"checkout_webhooks/internal/infrastructure/functions"
	"checkout_webhooks/internal/infrastructure/logger"
	"checkout_webhooks/internal/infrastructure/metrics"
	"checkout_webhooks/internal/usecase"
	"checkout_webhooks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// shutdownTimeout leaves room for an in-flight lyrics retry schedule.
const shutdownTimeout = 90 * time.Second

// Run wires the service from cfg and serves HTTP until ctx is cancelled or the listener fails.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	router, err := Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("http server listening", zap.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the application: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Build connects the collaborators and returns the configured router.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (*gin.Engine, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: %w", err)
	}

	invoker, err := functions.NewInvoker(functions.Options{
		BaseURL:    cfg.Functions.BaseURL,
		ServiceKey: cfg.ServiceRoleKey,
		Timeout:    cfg.Functions.Timeout,
		Mock:       cfg.Functions.Mock,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("functions: %w", err)
	}

	var guard interfaces.IDispatchGuard
	if cfg.RedisEnabled() {
		guard = cache.NewRedisDispatchGuard(cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB))
		log.Info("dispatch guard enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	recorder := metrics.NewWebhookMetrics()

	orders := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	dispatcher := usecase.NewSideEffectDispatcher(
		invoker,
		repository.NewEmailLogDynamoRepository(ddb, cfg.Tables.EmailLogs),
		repository.NewLyricsApprovalDynamoRepository(ddb, cfg.Tables.LyricsApprovals),
		repository.NewJobDynamoRepository(ddb, cfg.Tables.Jobs),
		repository.NewQuizDynamoRepository(ddb, cfg.Tables.Quizzes),
		guard,
		recorder,
		usecase.DispatcherConfig{
			Retry: usecase.RetryPolicy{
				MaxAttempts: cfg.LyricsMaxAttempts,
				BaseDelay:   time.Second,
				CallTimeout: cfg.Functions.Timeout,
			},
			GuardTTL: cfg.DispatchGuardTTL,
		},
		log,
	)

	webhookUseCase := usecase.NewPaymentWebhookUseCase(usecase.PaymentWebhookDeps{
		Verifier: usecase.NewSignatureVerifier(map[entities.Provider]string{
			entities.ProviderCakto:   cfg.CaktoWebhookSecret,
			entities.ProviderHotmart: cfg.HotmartHottok,
		}, cfg.ServiceRoleKey),
		Orders:        orders,
		Logs:          repository.NewWebhookLogDynamoRepository(ddb, cfg.Tables.CaktoWebhookLogs, cfg.Tables.HotmartWebhookLogs),
		Dispatcher:    dispatcher,
		Metrics:       recorder,
		UnknownPolicy: usecase.ParseUnknownStatusPolicy(cfg.UnknownStatusPolicy),
		PhoneScanMax:  cfg.PhoneScanLimit,
		Logger:        log,
	})

	return NewRouter(handlers.NewPaymentWebhookHandler(webhookUseCase, log), recorder.Handler(), log), nil
}

// NewRouter registers every route on a fresh engine.
func NewRouter(webhookHandler *handlers.PaymentWebhookHandler, metricsHandler http.Handler, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metricsHandler))
	router.GET("/ping", handlers.Ping)

	addWebhookRoutes(&router.RouterGroup, webhookHandler)
	v1 := router.Group("/v1")
	v1.GET("/ping", handlers.Ping)
	addWebhookRoutes(v1, webhookHandler)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
	}))
}
