package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client               DynamoDBAPI
	MintsTableName       string
	SettingsTableName    string
	ConnectionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, mintsTable, settingsTable, connectionsTable string) *Store {
	return &Store{
		Client:               client,
		MintsTableName:       mintsTable,
		SettingsTableName:    settingsTable,
		ConnectionsTableName: connectionsTable,
	}
}

// Make sure we conform to the interfaces
var (
	_ storage.Storage          = (*Store)(nil)
	_ storage.WebSocketManager = (*Store)(nil)
	_ DynamoDBAPI              = (*dynamodb.Client)(nil)
)

// maxTransactItems is the DynamoDB limit on actions in a single TransactWriteItems call.
const maxTransactItems = 100
