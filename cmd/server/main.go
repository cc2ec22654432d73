// Package main is the entry point for the UnifiedUI Document Store Service.
// @title UnifiedUI Document Store Service API
// @version 1.0
// @description Collection and document CRUD, field mutation and array helpers over a pluggable document store
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/unifiedui/docstore-service
// @contact.email support@unifiedui.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Service API key
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unifiedui/docstore-service/docs"
	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/api/routes"
	"github.com/unifiedui/docstore-service/internal/config"
	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/core/vault"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/memory"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/mongodb"
	redisdocdb "github.com/unifiedui/docstore-service/internal/infrastructure/docdb/redis"
	dotenvvault "github.com/unifiedui/docstore-service/internal/infrastructure/vault/dotenv"
	"github.com/unifiedui/docstore-service/internal/pkg/logging"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.Log)
	log.Logger = logger

	ctx := context.Background()

	// Initialize vault using factory pattern
	vaultClient, err := createVault(cfg.Vault)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize vault")
	}
	if vaultClient != nil {
		defer vaultClient.Close()
	}

	// Resolve secret references before validating the store configuration
	storeCfg, err := storeConfig(cfg.Store).ResolveSecrets(ctx, vaultClient)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve store secrets")
	}

	// Open the document store session
	store, err := docstore.Open(ctx, storeCfg, newDialer(cfg.DocDB, cfg.Redis),
		docstore.WithLogger(logger.With().Str("component", "docstore").Logger()))
	if err != nil {
		logger.Fatal().Err(err).Str("docdb_type", cfg.DocDB.Type).Msg("failed to open document store")
	}
	defer store.Close(ctx)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, store, vaultClient, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Str("docdb_type", cfg.DocDB.Type).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}

// createVault creates a vault based on the configuration. Type "none"
// disables secret references and returns a nil vault.
func createVault(cfg config.VaultConfig) (vault.Vault, error) {
	switch vault.Type(cfg.Type) {
	case vault.TypeNone:
		return nil, nil
	case vault.TypeDotEnv:
		if cfg.SecretsFile == "" {
			return dotenvvault.NewVault(), nil
		}
		v, err := dotenvvault.NewVaultFromFile(cfg.SecretsFile)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported vault type: %s", cfg.Type)
	}
}

// storeConfig maps the loaded store section onto the facade configuration.
func storeConfig(cfg config.StoreConfig) docstore.Config {
	return docstore.Config{
		APIKey:            cfg.APIKey,
		AuthDomain:        cfg.AuthDomain,
		DatabaseURL:       cfg.DatabaseURL,
		ProjectID:         cfg.ProjectID,
		StorageBucket:     cfg.StorageBucket,
		MessagingSenderID: cfg.MessagingSenderID,
		AppID:             cfg.AppID,
		MeasurementID:     cfg.MeasurementID,
	}
}

// newDialer returns the function the facade uses to open its store session.
func newDialer(docDBCfg config.DocDBConfig, redisCfg config.RedisConfig) docstore.DialFunc {
	return func(ctx context.Context, cfg docstore.Config) (docdb.Client, error) {
		return createDocDBClient(ctx, docDBCfg, redisCfg, cfg)
	}
}

// createDocDBClient creates a document database client based on the configuration.
// The store's databaseURL is the backend connection URL and its projectId
// names the database (mongodb) or key namespace (redis).
func createDocDBClient(ctx context.Context, docDBCfg config.DocDBConfig, redisCfg config.RedisConfig, store docstore.Config) (docdb.Client, error) {
	switch docdb.Type(docDBCfg.Type) {
	case docdb.TypeMongoDB, docdb.TypeCosmosDB:
		// CosmosDB uses MongoDB protocol, so we can use the same client
		return mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:          store.DatabaseURL,
			DatabaseName: store.ProjectID,
			AppName:      store.AppID,
		})
	case docdb.TypeRedis:
		keyPrefix := redisCfg.KeyPrefix
		if keyPrefix == "" {
			keyPrefix = store.ProjectID
		}
		return redisdocdb.NewClient(redisdocdb.Config{
			URL:          store.DatabaseURL,
			KeyPrefix:    keyPrefix,
			MaxTxRetries: redisCfg.MaxTxRetries,
		})
	case docdb.TypeMemory:
		return memory.NewClient(), nil
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", docDBCfg.Type)
	}
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, store *docstore.Facade, vaultClient vault.Vault, logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddlewareWithLogger(logger)
	errorMw := middleware.NewErrorMiddleware()
	authMw := middleware.NewAuthMiddleware(cfg.Server.APIKey)
	corsMw := middleware.NewCORSMiddleware(middleware.DefaultCORSConfig(cfg.Server.CORSOrigins))

	// Create handlers
	routesCfg := &routes.Config{
		HealthHandler:      handlers.NewHealthHandler(store.Client(), vaultClient),
		CollectionsHandler: handlers.NewCollectionsHandler(store),
		DocumentsHandler:   handlers.NewDocumentsHandler(store),
		AuthMiddleware:     authMw,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, corsMw)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
