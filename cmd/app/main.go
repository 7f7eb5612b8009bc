package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/nutstash-wallet/pkg/actions"
	"github.com/chris/nutstash-wallet/pkg/api"
	"github.com/chris/nutstash-wallet/pkg/config"
	"github.com/chris/nutstash-wallet/pkg/handlers"
	wshandler "github.com/chris/nutstash-wallet/pkg/handlers/websockets"
	"github.com/chris/nutstash-wallet/pkg/middleware"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/notice"
	"github.com/chris/nutstash-wallet/pkg/notify"
	"github.com/chris/nutstash-wallet/pkg/registry"
	"github.com/chris/nutstash-wallet/pkg/scheduler"
	"github.com/chris/nutstash-wallet/pkg/storage"
	dydbstore "github.com/chris/nutstash-wallet/pkg/storage/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/storage/memory"
	"github.com/chris/nutstash-wallet/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// backend is what the local server needs from a storage implementation.
type backend interface {
	storage.Storage
	storage.WebSocketManager
}

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	var (
		awsCfg aws.Config
		store  backend
	)
	if cfg.StorageBackend == config.BackendDynamoDB || cfg.SQSQueueURL != "" || cfg.WebSocketAPIEndpoint != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
	}
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.New()
	default:
		store = dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.MintsTableName, cfg.SettingsTableName, cfg.ConnectionsTableName)
	}

	// Local clients are always served; API Gateway clients only when an endpoint is configured.
	hub := websockets.NewHub()
	var publisher websockets.Publisher = hub
	if cfg.WebSocketAPIEndpoint != "" {
		publisher = websockets.MultiPublisher{hub, websockets.NewPublisher(awsCfg, store, store, cfg.WebSocketAPIEndpoint)}
	}

	mints := registry.New(store, nil)
	if err := mints.Load(ctx); err != nil {
		log.Fatalf("failed to load mint registry: %v", err)
	}
	mints.Subscribe(func(snapshot []models.Mint) {
		if err := publisher.Publish(ctx, websockets.NewMintsUpdated(snapshot)); err != nil {
			logger.Error("failed to publish registry update", "error", err)
		}
	})

	message, err := notice.New(ctx, store)
	if err != nil {
		log.Fatalf("failed to load notice: %v", err)
	}
	message.Subscribe(func(value string) {
		if err := publisher.Publish(ctx, websockets.NewNoticeUpdated(value)); err != nil {
			logger.Error("failed to publish notice update", "error", err)
		}
	})

	notifier := notify.Multi{notify.NewLogNotifier(logger), notify.NewPublisherNotifier(publisher, logger)}
	walletActions := actions.New(mints, notifier)

	var sched scheduler.Scheduler
	if cfg.SQSQueueURL != "" {
		sched = scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL)
	} else {
		log.Println("SQS_QUEUE_URL not set, asynchronous rotation disabled")
	}

	handler := handlers.NewApiHandler(mints, walletActions, sched, message)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Handle("/ws", wshandler.NewHandler(store, hub))
	api.HandlerFromMux(handler, router)

	log.Printf("Starting server on port %s (storage: %s)", cfg.HTTPPort, cfg.StorageBackend)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

