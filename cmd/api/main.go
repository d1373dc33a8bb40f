package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"intake-backend/internal/infra/blobstore"
	"intake-backend/internal/infra/db"
	"intake-backend/internal/infra/notifier"
	mongoRepo "intake-backend/internal/infra/persistence/mongo"
	"intake-backend/internal/observability/logging"
	"intake-backend/pkg/config"

	contactUC "intake-backend/internal/usecase/contact"
	newsUC "intake-backend/internal/usecase/news"
	"intake-backend/internal/usecase/notify"

	hhttp "intake-backend/internal/handler/http"
	hcontact "intake-backend/internal/handler/http/contact"
	hnews "intake-backend/internal/handler/http/news"
	"intake-backend/internal/handler/http/requestid"
)

const (
	// Multipart image uploads drive the request body ceiling: five
	// images of a few megabytes each plus form overhead.
	maxRequestBodyBytes = 32 << 20

	// notifyMaxConcurrent bounds in-flight notification deliveries.
	notifyMaxConcurrent = 4
)

func main() {
	logger := initLogger()
	cfg := config.Load()

	client := db.Open(cfg.Mongo)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		db.Close(ctx, client)
	}()

	version := getVersion()
	database := client.Database(cfg.Mongo.Database)

	notifySvc := setupNotify(logger, cfg)
	handler := setupServer(logger, cfg, client, database, notifySvc, version)

	runServer(logger, handler, notifySvc, cfg.Port, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupNotify wires the notification channels. A misconfigured or absent
// mail channel degrades to a no-op sender rather than blocking startup:
// intake must keep accepting submissions even when notification is down.
func setupNotify(logger *slog.Logger, cfg config.Config) notify.Service {
	var channel *notify.MailChannel
	if cfg.Mail.Enabled() {
		mailer, err := notifier.NewMailNotifier(notifier.MailConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			To:       cfg.Mail.To,
		})
		if err != nil {
			logger.Error("mail notifier setup failed, notifications disabled", slog.Any("error", err))
			channel = notify.NewMailChannel(nil, false)
		} else {
			logger.Info("mail notifications enabled",
				slog.String("host", cfg.Mail.Host),
				slog.Int("port", cfg.Mail.Port))
			channel = notify.NewMailChannel(mailer, true)
		}
	} else {
		logger.Warn("MAIL_USERNAME not set, contact notifications are disabled")
		channel = notify.NewMailChannel(nil, false)
	}

	return notify.NewService([]notify.Channel{channel}, notifyMaxConcurrent)
}

// setupBlobStore selects the image store implementation. Without
// credentials the news endpoints still work for text-only items.
func setupBlobStore(logger *slog.Logger, cfg config.Config) blobstore.BlobStore {
	if !cfg.Cloudinary.Enabled() {
		logger.Warn("CLOUDINARY_CLOUD_NAME not set, image uploads are disabled")
		return blobstore.NewNoOpStore()
	}
	store, err := blobstore.NewCloudinaryStore(cfg.Cloudinary)
	if err != nil {
		logger.Error("blob store setup failed, image uploads disabled", slog.Any("error", err))
		return blobstore.NewNoOpStore()
	}
	logger.Info("image blob store enabled",
		slog.String("cloud", cfg.Cloudinary.CloudName),
		slog.String("folder", cfg.Cloudinary.Folder))
	return store
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(
	logger *slog.Logger,
	cfg config.Config,
	client *mongo.Client,
	database *mongo.Database,
	notifySvc notify.Service,
	version string,
) http.Handler {
	contactSvc := contactUC.Service{
		Repo:   mongoRepo.NewContactRepo(database),
		Notify: notifySvc,
	}
	newsSvc := newsUC.Service{
		Repo:  mongoRepo.NewNewsRepo(database),
		Blobs: setupBlobStore(logger, cfg),
	}

	mux := http.NewServeMux()
	hcontact.Register(mux, contactSvc)
	hnews.Register(mux, newsSvc)

	// 死活確認用のルートエンドポイント
	mux.Handle("GET    /{$}", hhttp.LiveHandler{})
	mux.Handle("GET    /health", &hhttp.HealthHandler{Client: client, Version: version})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, cfg, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS → Request ID → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, cfg config.Config, handler http.Handler) http.Handler {
	logger.Info("CORS enabled", slog.Any("allowed_origins", cfg.CORSAllowedOrigins))

	// Apply in reverse order (innermost to outermost).
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(maxRequestBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(cfg.CORSAllowedOrigins)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, notifySvc notify.Service, port, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + port
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Drain in-flight notification deliveries before closing the server
	// so accepted submissions still get their best-effort notification.
	if err := notifySvc.Shutdown(shutdownCtx); err != nil {
		logger.Warn("notification drain incomplete", slog.Any("error", err))
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
