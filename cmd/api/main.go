package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httphandlers "github.com/rafabene/dentalclinic-backend/internal/handlers/http"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/config"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/i18n"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/idgen"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/logging"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/push"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/security"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/supabase"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/telemetry"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

//	@title						Dental Clinic API
//	@version					1.0
//	@description				Backend-for-frontend do painel web e do aplicativo da clínica odontológica.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer access token
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	if syncer, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}
	logger.Info("starting dental clinic backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Tracing (opcional)
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		log.Fatal(err)
	}

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		log.Fatal(err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
		logger.Info("database migrated")
	}

	// Inicializar i18n
	i18nService, err := i18n.NewDefaultService()
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	ids, err := idgen.NewSnowflakeGenerator(cfg.Snowflake.Node)
	if err != nil {
		logger.Error("failed to initialize id generator", "error", err)
		log.Fatal(err)
	}

	// Serviços externos
	supabaseClient := supabase.NewClient(cfg.Supabase)
	credentials := supabase.NewAuthClient(supabaseClient)
	objectStore := supabase.NewStorageClient(supabaseClient, cfg.Supabase.Bucket)
	issuer := security.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.RefreshTokenSize)
	pushSender := push.NewLogSender(logger)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewRefreshTokenRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	activityRepo := postgres.NewActivityLogRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	modelRepo := postgres.NewDentalModelRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	audit := services.NewActivityRecorder(activityRepo, ids, logger)
	notifier := services.NewNotificationService(notificationRepo, userRepo, pushSender, logger)
	authService := services.NewAuthService(userRepo, tokenRepo, credentials, issuer, uow, notifier, services.AuthSettings{
		WebAccessTTL:             cfg.JWT.WebAccessExpiry,
		AppAccessTTL:             cfg.JWT.AppAccessExpiry,
		RefreshTTL:               cfg.JWT.RefreshExpiry,
		PasswordResetRedirectURL: cfg.Auth.PasswordResetRedirectURL,
	}, logger)
	userService := services.NewUserService(userRepo, credentials, uow, audit, notifier, logger)
	catalogService := services.NewCatalogService(serviceRepo, categoryRepo, uow, audit, notifier, logger)
	modelService := services.NewModelService(modelRepo, objectStore, cfg.Upload.TmpDir, cfg.Upload.SignedURLTTL, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	maxUploadBytes := cfg.Upload.MaxSizeMB << 20
	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:            cfg.Server.BaseURL,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		MaxMultipartMemory: 32 << 20,
		Issuer:             issuer,
		I18n:               i18nService,
		Logger:             logger,
	}, httphandlers.Handlers{
		Auth:          httphandlers.NewAuthHandler(authService, logger),
		Users:         httphandlers.NewUserHandler(userService, logger),
		Catalog:       httphandlers.NewCatalogHandler(catalogService, logger),
		Models:        httphandlers.NewModelHandler(modelService, logger, maxUploadBytes),
		Notifications: httphandlers.NewNotificationHandler(notifier, logger),
		ActivityLogs:  httphandlers.NewActivityLogHandler(audit, logger),
		Health:        httphandlers.NewHealthHandler(cfg.Env, sqlDB.PingContext, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(router, "dentalclinic-backend"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}

	logger.Info("server exited")
}
