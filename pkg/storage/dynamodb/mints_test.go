package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
	"github.com/chris/nutstash-wallet/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func marshalMints(t *testing.T, mints ...models.Mint) []map[string]types.AttributeValue {
	t.Helper()
	var items []map[string]types.AttributeValue
	for _, m := range mints {
		av, err := attributevalue.MarshalMap(m)
		require.NoError(t, err)
		items = append(items, av)
	}
	return items
}

func TestListMints(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	older := models.Mint{MintURL: "https://a", Keys: models.MintKeys{"1": "02aa"}, Keysets: []string{"id1"}, CreatedAt: now.Add(-time.Hour)}
	newer := models.Mint{MintURL: "https://b", Keysets: []string{"id2"}, CreatedAt: now}

	t.Run("Success Sorted By Creation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: marshalMints(t, newer, older)}, nil).Once()

		store := New(mockClient, "mints", "settings", "connections")
		mints, err := store.ListMints(context.Background())

		assert.NoError(t, err)
		require.Len(t, mints, 2)
		assert.Equal(t, "https://a", mints[0].MintURL)
		assert.Equal(t, models.MintKeys{"1": "02aa"}, mints[0].Keys)
		assert.Equal(t, "https://b", mints[1].MintURL)
		mockClient.AssertExpectations(t)
	})

	t.Run("Paginates", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		lastKey := map[string]types.AttributeValue{"mint_url": &types.AttributeValueMemberS{Value: "https://a"}}
		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
			return in.ExclusiveStartKey == nil
		})).Return(&dynamodb.ScanOutput{Items: marshalMints(t, older), LastEvaluatedKey: lastKey}, nil).Once()
		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
			return in.ExclusiveStartKey != nil
		})).Return(&dynamodb.ScanOutput{Items: marshalMints(t, newer)}, nil).Once()

		store := New(mockClient, "mints", "settings", "connections")
		mints, err := store.ListMints(context.Background())

		assert.NoError(t, err)
		assert.Len(t, mints, 2)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "mints", "settings", "connections")
		_, err := store.ListMints(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan mints table")
		mockClient.AssertExpectations(t)
	})
}

func TestCreateMint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.TableName == "mints" && *in.ConditionExpression == "attribute_not_exists(mint_url)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "mints", "settings", "connections")
		created, err := store.CreateMint(context.Background(), &models.Mint{MintURL: "https://a"})

		assert.NoError(t, err)
		assert.Equal(t, "https://a", created.MintURL)
		assert.False(t, created.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, "mints", "settings", "connections")
		_, err := store.CreateMint(context.Background(), &models.Mint{MintURL: "https://a"})

		assert.ErrorIs(t, err, storage.ErrMintAlreadyExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "mints", "settings", "connections")
		_, err := store.CreateMint(context.Background(), &models.Mint{MintURL: "https://a"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create mint in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestPutMints(t *testing.T) {
	t.Run("Puts Every Mint Without Deleting", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := New(mockClient, "mints", "settings", "connections")
		err := store.PutMints(context.Background(), []models.Mint{
			{MintURL: "https://a", Keysets: []string{"id2", "id1"}},
			{MintURL: "https://b"},
		})

		require.NoError(t, err)
		require.NotNil(t, captured)
		require.Len(t, captured.TransactItems, 2)
		for _, item := range captured.TransactItems {
			require.NotNil(t, item.Put)
			assert.Nil(t, item.Delete)
			assert.Equal(t, "mints", *item.Put.TableName)
		}
		assert.Equal(t, &types.AttributeValueMemberS{Value: "https://a"}, captured.TransactItems[0].Put.Item["mint_url"])
		mockClient.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Nothing To Write", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := New(mockClient, "mints", "settings", "connections")
		err := store.PutMints(context.Background(), nil)

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Too Large", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		mints := make([]models.Mint, maxTransactItems+1)
		for i := range mints {
			mints[i] = models.Mint{MintURL: fmt.Sprintf("https://mint-%d", i)}
		}

		store := New(mockClient, "mints", "settings", "connections")
		err := store.PutMints(context.Background(), mints)

		assert.ErrorIs(t, err, storage.ErrRegistryTooLarge)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		store := New(mockClient, "mints", "settings", "connections")
		err := store.PutMints(context.Background(), []models.Mint{{MintURL: "https://a"}})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute registry write transaction")
		mockClient.AssertExpectations(t)
	})
}
