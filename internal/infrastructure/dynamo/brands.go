package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-shop-api/internal/domain"
)

// BrandRepo provides typed DynamoDB operations for the brands table.
type BrandRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewBrandRepo(client *dynamodb.Client, tableName string) *BrandRepo {
	return &BrandRepo{client: client, tableName: tableName}
}

func (r *BrandRepo) Put(ctx context.Context, b *domain.Brand) error {
	item, err := attributevalue.MarshalMap(b)
	if err != nil {
		return fmt.Errorf("marshal brand: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *BrandRepo) Get(ctx context.Context, brandID string) (*domain.Brand, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("brand_id", brandID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("brand not found: %w", domain.ErrNotFound)
	}
	var b domain.Brand
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) Scan(ctx context.Context) ([]domain.Brand, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var brands []domain.Brand
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepo) Update(ctx context.Context, brandID string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("brand_id", brandID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(brand_id)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if isConditionalCheckFailed(err) {
		return fmt.Errorf("brand not found: %w", domain.ErrNotFound)
	}
	return err
}

// HardDelete permanently removes a brand item. Deleting an unknown id is a no-op.
func (r *BrandRepo) HardDelete(ctx context.Context, brandID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("brand_id", brandID),
	})
	return err
}
