package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-shop-api/internal/domain"
)

// ManufacturerRepo provides typed DynamoDB operations for the manufacturers table.
type ManufacturerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewManufacturerRepo(client *dynamodb.Client, tableName string) *ManufacturerRepo {
	return &ManufacturerRepo{client: client, tableName: tableName}
}

func (r *ManufacturerRepo) Put(ctx context.Context, m *domain.Manufacturer) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal manufacturer: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ManufacturerRepo) Get(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("manufacturer_id", manufacturerID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("manufacturer not found: %w", domain.ErrNotFound)
	}
	var m domain.Manufacturer
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepo) Scan(ctx context.Context) ([]domain.Manufacturer, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var manufacturers []domain.Manufacturer
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &manufacturers); err != nil {
		return nil, err
	}
	return manufacturers, nil
}

func (r *ManufacturerRepo) Update(ctx context.Context, manufacturerID string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("manufacturer_id", manufacturerID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(manufacturer_id)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("manufacturer not found: %w", domain.ErrNotFound)
	}
	return err
}

// HardDelete permanently removes a manufacturer item. Deleting an unknown id is a no-op.
func (r *ManufacturerRepo) HardDelete(ctx context.Context, manufacturerID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("manufacturer_id", manufacturerID),
	})
	return err
}
