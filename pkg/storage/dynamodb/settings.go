package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
)

// GetValue retrieves a setting from DynamoDB by its key.
func (s *Store) GetValue(ctx context.Context, key string) (string, error) {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"key": key})
	if err != nil {
		return "", fmt.Errorf("failed to marshal setting key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.SettingsTableName),
		Key:       keyAV,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get setting from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return "", storage.ErrKeyNotFound
	}

	var setting models.Setting
	if err := attributevalue.UnmarshalMap(result.Item, &setting); err != nil {
		return "", fmt.Errorf("failed to unmarshal setting: %w", err)
	}

	return setting.Value, nil
}

// SetValue writes a setting to DynamoDB, replacing any previous value.
func (s *Store) SetValue(ctx context.Context, key, value string) error {
	settingAV, err := attributevalue.MarshalMap(models.Setting{Key: key, Value: value, UpdatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal setting: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.SettingsTableName),
		Item:      settingAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put setting in DynamoDB: %w", err)
	}

	return nil
}
