package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/nutstash-wallet/pkg/config"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/registry"
	"github.com/chris/nutstash-wallet/pkg/scheduler"
	"github.com/chris/nutstash-wallet/pkg/storage"
	dydbstore "github.com/chris/nutstash-wallet/pkg/storage/dynamodb"
)

// reconciler finds mints whose keyset history is out of date with their keys
// and queues a rotation for each so the rotation lambda records the missing ID.
type reconciler struct {
	mints     *registry.Registry
	scheduler scheduler.Scheduler
}

func newReconciler(store storage.MintRegistryStore, sched scheduler.Scheduler) *reconciler {
	return &reconciler{mints: registry.New(store, nil), scheduler: sched}
}

func newReconcilerFromEnv() *reconciler {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}
	if err := cfg.RequireQueue(); err != nil {
		log.Fatal(err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.MintsTableName, cfg.SettingsTableName, cfg.ConnectionsTableName)
	return newReconciler(store, scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL))
}

// HandleRequest is triggered by an EventBridge Schedule.
func (r *reconciler) HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation of mint keysets...")

	if err := r.mints.Load(ctx); err != nil {
		log.Printf("ERROR: failed to load mint registry: %v", err)
		return err
	}

	stale := r.mints.StaleMints()
	if len(stale) == 0 {
		log.Println("No stale mints found.")
		return nil
	}

	log.Printf("Found %d stale mints. Re-enqueuing rotations...", len(stale))

	for _, m := range stale {
		req := &models.RotationRequest{MintURL: m.MintURL, Keys: m.Keys}
		if err := r.scheduler.ScheduleRotation(ctx, req); err != nil {
			// One bad mint should not stop the batch.
			log.Printf("ERROR: failed to re-enqueue rotation for mint %s: %v", m.MintURL, err)
			continue
		}
		log.Printf("Successfully re-enqueued rotation for mint %s", m.MintURL)
	}

	log.Println("Reconciliation process finished.")
	return nil
}

func main() {
	lambda.Start(newReconcilerFromEnv().HandleRequest)
}
