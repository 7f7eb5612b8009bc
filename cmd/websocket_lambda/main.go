package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/config"
	wshandler "github.com/chris/nutstash-wallet/pkg/handlers/websockets"
	dydbstore "github.com/chris/nutstash-wallet/pkg/storage/dynamodb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.MintsTableName, cfg.SettingsTableName, cfg.ConnectionsTableName)

	// API Gateway routes $connect, $disconnect and $default to this one function.
	lambda.Start(wshandler.NewHandler(store, nil).HandleRequest)
}
