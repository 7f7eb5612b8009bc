package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
	"github.com/chris/nutstash-wallet/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetValue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		item, _ := attributevalue.MarshalMap(models.Setting{Key: "message", Value: "hello"})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		store := New(mockClient, "mints", "settings", "connections")
		value, err := store.GetValue(context.Background(), "message")

		assert.NoError(t, err)
		assert.Equal(t, "hello", value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "mints", "settings", "connections")
		_, err := store.GetValue(context.Background(), "message")

		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "mints", "settings", "connections")
		_, err := store.GetValue(context.Background(), "message")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get setting from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestSetValue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			var setting models.Setting
			if err := attributevalue.UnmarshalMap(in.Item, &setting); err != nil {
				return false
			}
			return *in.TableName == "settings" && setting.Key == "message" && setting.Value == "x"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "mints", "settings", "connections")
		err := store.SetValue(context.Background(), "message", "x")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "mints", "settings", "connections")
		err := store.SetValue(context.Background(), "message", "x")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to put setting in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}
