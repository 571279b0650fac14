package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventcomposer/config"
	_ "eventcomposer/docs"
	"eventcomposer/internal/adapters/auth"
	"eventcomposer/internal/adapters/email"
	"eventcomposer/internal/adapters/idgen"
	"eventcomposer/internal/adapters/storage"
	httpDelivery "eventcomposer/internal/delivery/http"
	"eventcomposer/internal/delivery/http/controllers"
	"eventcomposer/internal/delivery/http/middleware"
	"eventcomposer/internal/domain"
	"eventcomposer/internal/repository/postgres"
	"eventcomposer/internal/services"

	_ "github.com/lib/pq"
)

// @title Event Composer API
// @version 1.0
// @description Compose events from catalog content and create them through the ownership and event write saga.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}
	logger.Info("connected to database")

	blobs, err := storage.NewBlobStore(storage.Config{
		Provider:        cfg.BlobProvider,
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, logger)
	if err != nil {
		return err
	}
	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return err
	}

	store := postgres.NewStore(db)
	eventRepo := postgres.NewEventRepository(db)
	ids := idgen.UUID{}
	verifier := auth.NewJWT(cfg.JWTSecret)

	creator := services.NewEventCreator(store, blobs, middleware.ContextIdentity{}, ids, notifier, logger, location, cfg.StoreTimeout)
	catalogService := services.NewCatalogService(store, cfg.StoreTimeout)
	draftService := services.NewDraftService(catalogService, services.NewGroupLibrary(ids), creator, ids, logger, cfg.StoreTimeout)
	eventService := services.NewEventService(eventRepo, store, cfg.StoreTimeout)

	router := httpDelivery.NewRouter(
		controllers.NewDraftController(logger, draftService),
		controllers.NewGroupController(logger, draftService),
		controllers.NewEventController(logger, eventService, catalogService),
		middleware.RequireAuth(verifier, logger),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newNotifier picks the submission notifier: "ses" mails NotifyAddress, anything else logs.
func newNotifier(cfg *config.Config, logger *slog.Logger) (domain.Notifier, error) {
	if cfg.NotifierProvider != "ses" {
		return services.NewLogNotifier(logger), nil
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    "ses",
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return nil, err
	}
	return services.NewMailNotifier(mailer, email.NewTemplateRenderer(), cfg.NotifyAddress, logger), nil
}
