package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-shop-api/internal/domain"
)

// PhoneKeyRepo provides typed DynamoDB operations for the phone_keys table.
// PK: key. GSI phone-index (hash: phone) serves the trailing-hour rate check.
type PhoneKeyRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPhoneKeyRepo(client *dynamodb.Client, tableName string) *PhoneKeyRepo {
	return &PhoneKeyRepo{client: client, tableName: tableName}
}

func (r *PhoneKeyRepo) Put(ctx context.Context, k *domain.PhoneKey) error {
	item, err := attributevalue.MarshalMap(k)
	if err != nil {
		return fmt.Errorf("marshal phone key: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *PhoneKeyRepo) GetByKey(ctx context.Context, key string) (*domain.PhoneKey, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("key", key),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("phone key not found: %w", domain.ErrNotFound)
	}
	var k domain.PhoneKey
	if err := attributevalue.UnmarshalMap(out.Item, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

// ListByPhoneSince returns all keys for the phone created after the given instant.
// Partitions hold at most a handful of keys per phone, so the created_at filter
// runs over a tiny result set.
func (r *PhoneKeyRepo) ListByPhoneSince(ctx context.Context, phone string, since time.Time) ([]domain.PhoneKey, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("phone-index"),
		KeyConditionExpression: aws.String("phone = :p"),
		FilterExpression:       aws.String("created_at > :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":     &types.AttributeValueMemberS{Value: phone},
			":since": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}
	var keys []domain.PhoneKey
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Update applies a partial SET update to the key's record.
// Fails with domain.ErrNotFound if the key does not exist.
func (r *PhoneKeyRepo) Update(ctx context.Context, key string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	ue.Names["#k"] = "key"
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("key", key),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(#k)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("phone key not found: %w", domain.ErrNotFound)
	}
	return err
}

// MarkUsed atomically flips is_used false->true and stamps used_at.
// The conditional write makes consumption single-winner: when two requests
// race past the readiness check, the second UpdateItem fails its condition
// and the caller gets domain.ErrNotFound ("no longer available").
func (r *PhoneKeyRepo) MarkUsed(ctx context.Context, key string, usedAt time.Time) (*domain.PhoneKey, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("key", key),
		UpdateExpression:    aws.String("SET is_used = :t, used_at = :ts"),
		ConditionExpression: aws.String("attribute_exists(#k) AND is_used = :f"),
		ExpressionAttributeNames: map[string]string{
			"#k": "key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":  &types.AttributeValueMemberBOOL{Value: true},
			":f":  &types.AttributeValueMemberBOOL{Value: false},
			":ts": &types.AttributeValueMemberS{Value: usedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return nil, fmt.Errorf("phone key no longer available: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var k domain.PhoneKey
	if err := attributevalue.UnmarshalMap(out.Attributes, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
