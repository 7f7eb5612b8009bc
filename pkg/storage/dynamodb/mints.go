package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/nutstash-wallet/pkg/models"
	"github.com/chris/nutstash-wallet/pkg/storage"
)

// ListMints scans the mints table and returns the registry ordered by creation time.
func (s *Store) ListMints(ctx context.Context) ([]models.Mint, error) {
	var mints []models.Mint
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.MintsTableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan mints table: %w", err)
		}

		var page []models.Mint
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mints: %w", err)
		}
		mints = append(mints, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	// Scan order is arbitrary; creation order keeps "first match wins" stable.
	sort.SliceStable(mints, func(i, j int) bool {
		return mints[i].CreatedAt.Before(mints[j].CreatedAt)
	})

	return mints, nil
}

// CreateMint creates a new mint record in DynamoDB.
func (s *Store) CreateMint(ctx context.Context, mint *models.Mint) (*models.Mint, error) {
	now := time.Now()
	if mint.CreatedAt.IsZero() {
		mint.CreatedAt = now
	}
	mint.UpdatedAt = now

	mintAV, err := attributevalue.MarshalMap(mint)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mint: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.MintsTableName),
		Item:                mintAV,
		ConditionExpression: aws.String("attribute_not_exists(mint_url)"), // At most one entry per URL.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("mint %s: %w", mint.MintURL, storage.ErrMintAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create mint in DynamoDB: %w", err)
	}

	return mint, nil
}

// PutMints writes the given mints in a single transaction.
// Rows for mints absent from the collection are left in place.
func (s *Store) PutMints(ctx context.Context, mints []models.Mint) error {
	if len(mints) == 0 {
		return nil
	}
	if len(mints) > maxTransactItems {
		return fmt.Errorf("%d write operations: %w", len(mints), storage.ErrRegistryTooLarge)
	}

	items := make([]types.TransactWriteItem, 0, len(mints))
	for _, m := range mints {
		mintAV, err := attributevalue.MarshalMap(m)
		if err != nil {
			return fmt.Errorf("failed to marshal mint %s: %w", m.MintURL, err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(s.MintsTableName),
				Item:      mintAV,
			},
		})
	}

	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return fmt.Errorf("failed to execute registry write transaction: %w", err)
	}

	return nil
}
