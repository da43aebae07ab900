package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-shop-api/internal/domain"
)

// CountryRepo provides typed DynamoDB operations for the countries table.
// Countries are reference data; the API reads them, seeding writes them.
type CountryRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCountryRepo(client *dynamodb.Client, tableName string) *CountryRepo {
	return &CountryRepo{client: client, tableName: tableName}
}

func (r *CountryRepo) Put(ctx context.Context, c *domain.Country) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal country: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CountryRepo) Get(ctx context.Context, countryID string) (*domain.Country, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("country_id", countryID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("country not found: %w", domain.ErrNotFound)
	}
	var c domain.Country
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CountryRepo) Scan(ctx context.Context) ([]domain.Country, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var countries []domain.Country
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}
