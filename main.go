// File: casexpert/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casexpert/config"
	"casexpert/database"
	casesRepo "casexpert/database/repository/cases"
	lawyerRepo "casexpert/database/repository/lawyer"
	recordsRepo "casexpert/database/repository/records"
	userRepoPkg "casexpert/database/repository/user"
	"casexpert/handlers"
	"casexpert/middleware"
	"casexpert/routes"
	"casexpert/services/cases"
	ai "casexpert/services/intelligence"
	"casexpert/services/lawyer"
	"casexpert/services/legal"
	"casexpert/services/session"
	"casexpert/services/storage"
	"casexpert/services/user"
	"casexpert/utils"

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

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Record store.
	backend := newSnapshotBackend(logger)
	store, err := recordsRepo.NewStore(rootCtx, backend, logger)
	if err != nil {
		logger.Fatal("main: failed to load record store", zap.Error(err))
	}
	if err := recordsRepo.Seed(rootCtx, store, time.Now()); err != nil {
		logger.Fatal("main: failed to seed record store", zap.Error(err))
	}

	// Sessions.
	sessions, sessionProbe := newSessionStore(logger)

	// Repositories.
	userRepo := userRepoPkg.NewSnapshotUserRepo(store)
	caseRepo := casesRepo.NewSnapshotCaseRepo(store)
	lawyersRepo := lawyerRepo.NewSnapshotLawyerRepo(store)
	queryLogs := recordsRepo.NewQueryLogRepo(store)

	// Services.
	mode := cases.ModeStrict
	if config.IsLegacyAccess() {
		mode = cases.ModeLegacy
	}
	userService := user.NewUserService(userRepo, sessions, logger)
	caseService := cases.NewCaseService(caseRepo, mode, logger)
	lawyerService := lawyer.NewLawyerService(lawyersRepo, logger)

	remote := newRemoteCompleter(rootCtx, logger)
	completer := ai.NewFallbackCompleter(remote, logger)
	assistantService := ai.NewAssistantService(completer, queryLogs)

	transcriber := ai.FallbackTranscriber{Logger: logger}
	if path := config.AppConfig.GoogleServiceAccountFile; path != "" {
		gt, err := ai.NewGoogleTranscriber(rootCtx, path)
		if err != nil {
			logger.Warn("main: speech-to-text disabled", zap.Error(err))
		} else {
			defer gt.Close()
			transcriber.Primary = gt
		}
	}
	mlService := ai.NewMLService(remote, transcriber, logger)

	legalService := legal.NewLegalService(config.AppConfig.CourtListenerURL, config.AppConfig.AITimeout, queryLogs, logger)

	attachments, uploadDir := newAttachmentStore(logger)

	// Handlers.
	handlerBundle := &handlers.HandlerBundle{
		Auth:             userService,
		LegacyCases:      mode == cases.ModeLegacy,
		AssistantLimiter: middleware.NewRateLimiter(config.AppConfig.AssistantRateMax, config.AppConfig.AssistantRateWindow),
		UploadDir:        uploadDir,
		Users:            handlers.NewUserHandler(userService),
		Cases:            handlers.NewCaseHandler(caseService),
		Lawyers:          handlers.NewLawyerHandler(lawyerService),
		Storage:          handlers.NewStorageHandler(attachments),
		AI:               handlers.NewAIHandler(assistantService, mlService),
		Legal:            handlers.NewLegalHandler(legalService),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(config.AppConfig.MaxRequestsPerMin, time.Minute)))

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(rootCtx, 30*time.Second, map[string]utils.HealthProbe{
		"store":    store.Ping,
		"sessions": sessionProbe,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (access mode %s, store %s)...", srv.Addr, mode, store.BackendName())
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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func newSnapshotBackend(logger *zap.Logger) recordsRepo.SnapshotBackend {
	switch config.AppConfig.StoreBackend {
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Fatal("main: mongo store unavailable", zap.Error(err))
		}
		return recordsRepo.NewMongoSnapshotBackend(database.MongoClient, config.AppConfig.MongoDatabase)
	case "memory":
		return recordsRepo.NewMemorySnapshotBackend(nil)
	default:
		return recordsRepo.NewFileSnapshotBackend(config.AppConfig.DataFile)
	}
}

func newSessionStore(logger *zap.Logger) (session.Store, utils.HealthProbe) {
	ttl := config.AppConfig.SessionTTL
	if config.AppConfig.SessionBackend == "redis" {
		if err := utils.InitSessionCache(); err != nil {
			logger.Fatal("main: redis session store unavailable", zap.Error(err))
		}
		rs := session.NewRedisStore(utils.GetSessionCacheClient(), ttl)
		return rs, rs.Ping
	}
	return session.NewMemoryStore(ttl), func(context.Context) error { return nil }
}

// newRemoteCompleter picks the configured upstream model, or nil to answer from rules only.
func newRemoteCompleter(ctx context.Context, logger *zap.Logger) ai.TextCompleter {
	cfg := config.AppConfig
	useHF := cfg.HuggingFaceToken != "" && (cfg.CompleterBackend == "huggingface" || cfg.CompleterBackend == "auto")
	useGemini := cfg.GeminiAPIKey != "" && (cfg.CompleterBackend == "gemini" || (cfg.CompleterBackend == "auto" && !useHF))

	switch {
	case useHF:
		logger.Info("main: using Hugging Face completer", zap.String("model", cfg.HFModel))
		return ai.NewHuggingFaceCompleter(cfg.HuggingFaceToken, cfg.HFModel, cfg.AITimeout)
	case useGemini:
		gc, err := ai.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("main: Gemini completer disabled", zap.Error(err))
			return nil
		}
		logger.Info("main: using Gemini completer", zap.String("model", cfg.GeminiModel))
		return gc
	default:
		logger.Info("main: no completion credentials, using rule-based answers")
		return nil
	}
}

// newAttachmentStore returns the upload backend and, for local storage, the directory to serve.
func newAttachmentStore(logger *zap.Logger) (storage.AttachmentStore, string) {
	cfg := config.AppConfig
	if cfg.UploadBackend == "cloudinary" {
		cs, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			logger.Fatal("main: failed to initialize cloudinary storage", zap.Error(err))
		}
		return cs, ""
	}
	ls, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		logger.Fatal("main: failed to prepare upload directory", zap.Error(err))
	}
	return ls, cfg.UploadDir
}
