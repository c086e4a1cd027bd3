// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendly/config"
	"attendly/database"
	kvRepo "attendly/database/repository/kv"
	remoteRepo "attendly/database/repository/remote"
	"attendly/handlers"
	"attendly/middleware"
	"attendly/routes"
	"attendly/services/datasync"
	"attendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// local store.
	var localKV kvRepo.KeyValueStore
	var localPinger utils.Pinger
	switch config.AppConfig.LocalStore {
	case "redis":
		redisStore := kvRepo.NewRedisStore(utils.GetLocalStoreClient(), logger)
		localKV, localPinger = redisStore, redisStore
	default:
		localKV = kvRepo.NewMemoryStore()
	}

	// remote store.
	var remote remoteRepo.RemoteStore
	switch config.AppConfig.RemoteStore {
	case "firestore":
		remote = remoteRepo.NewFirestoreStore(utils.GetFirestore())
	case "mongo":
		client, err := database.InitDB()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		mongoStore := remoteRepo.NewMongoStore(client, config.AppConfig.MongoDatabase)
		if err := mongoStore.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		remote = mongoStore
	default:
		remote = remoteRepo.NewMemoryStore()
	}
	logger.Info("Stores configured",
		zap.String("local", config.AppConfig.LocalStore),
		zap.String("remote", config.AppConfig.RemoteStore))

	// identity.
	var identity middleware.IdentityProvider
	switch config.AppConfig.AuthProvider {
	case "firebase":
		identity = &middleware.FirebaseIdentity{Client: utils.GetAuthClient()}
	default:
		if config.AppConfig.JWTSecret == "" {
			logger.Warn("JWT_SECRET is empty; every request will be rejected")
		}
		identity = &middleware.JWTIdentity{Secret: []byte(config.AppConfig.JWTSecret)}
	}

	sessions := datasync.NewRegistry(localKV, remote, logger)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, localPinger, remote)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(sessions, identity))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := sessions.Shutdown(ctx); err != nil {
		logger.Warn("main: remote pushes still pending at exit", zap.Error(err))
	}
	stopMonitor()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}
	if utils.FirestoreClient != nil {
		_ = utils.FirestoreClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
