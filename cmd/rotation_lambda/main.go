package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/actions"
	"github.com/chris/nutstash-wallet/pkg/config"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/notify"
	"github.com/chris/nutstash-wallet/pkg/registry"
	"github.com/chris/nutstash-wallet/pkg/storage"
	dydbstore "github.com/chris/nutstash-wallet/pkg/storage/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/websockets"
)

func newRotatorFromEnv() *rotationHandler {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.MintsTableName, cfg.SettingsTableName, cfg.ConnectionsTableName)

	notifiers := notify.Multi{notify.NewLogNotifier(slog.Default())}
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if cfg.WebSocketAPIEndpoint != "" {
		publisher = websockets.NewPublisher(awsCfg, store, store, cfg.WebSocketAPIEndpoint)
		notifiers = append(notifiers, notify.NewPublisherNotifier(publisher, slog.Default()))
	}

	return newRotationHandler(store, notifiers, publisher)
}

// rotationHandler applies queued key rotations to the registry.
type rotationHandler struct {
	mints   *registry.Registry
	actions *actions.WalletActions
}

func newRotationHandler(store storage.MintRegistryStore, notifier notify.Notifier, publisher websockets.Publisher) *rotationHandler {
	mints := registry.New(store, nil)
	mints.Subscribe(func(snapshot []models.Mint) {
		if err := publisher.Publish(context.Background(), websockets.NewMintsUpdated(snapshot)); err != nil {
			log.Printf("ERROR: failed to publish registry update: %v", err)
		}
	})
	return &rotationHandler{
		mints:   mints,
		actions: actions.New(mints, notifier),
	}
}

// HandleRequest processes SQS messages and rotates the keys of the named mints.
func (h *rotationHandler) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var req models.RotationRequest
		if err := json.Unmarshal([]byte(message.Body), &req); err != nil {
			log.Printf("ERROR: failed to unmarshal rotation request from SQS message %s: %v", message.MessageId, err)
			return err
		}

		result, err := h.actions.UpdateMintKeys(ctx, models.Mint{MintURL: req.MintURL}, req.Keys)
		if err != nil {
			if errors.Is(err, storage.ErrMintNotFound) {
				// Redelivery cannot make an unknown mint appear.
				log.Printf("WARN: dropping rotation for unknown mint %s", req.MintURL)
				continue
			}
			log.Printf("ERROR: failed to rotate keys for mint %s: %v", req.MintURL, err)
			return err
		}

		log.Printf("Rotated keys for mint %s, new keyset %s", result.MintURL, result.KeysetID)
	}

	return nil
}

func main() {
	// Built in main rather than init so tests can construct their own handler.
	lambda.Start(newRotatorFromEnv().HandleRequest)
}
