package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/rashikfit/backend/internal/domain"
)

// DynamoAPI is the part of the DynamoDB client the store uses
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// dynamoItem is one row of the table; PK is the store key
type dynamoItem struct {
	PK         string    `dynamodbav:"PK"`
	Value      []byte    `dynamodbav:"value"`
	UpdateTime time.Time `dynamodbav:"updateTime"`
}

// DynamoStore keeps keys as items of a single-key DynamoDB table
type DynamoStore struct {
	client    DynamoAPI
	tableName string
	now       func() time.Time
}

// NewDynamoStore builds a client from the default AWS credential chain
func NewDynamoStore(ctx context.Context, tableName, region string) (*DynamoStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewDynamoStoreFromClient(dynamodb.NewFromConfig(cfg), tableName), nil
}

func NewDynamoStoreFromClient(client DynamoAPI, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName, now: time.Now}
}

func dynamoKey(key string) (map[string]types.AttributeValue, error) {
	pk, err := attributevalue.Marshal(key)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"PK": pk}, nil
}

func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := dynamoKey(key)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            k,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", key, err)
	}
	return item.Value, nil
}

func (s *DynamoStore) Set(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(dynamoItem{PK: key, Value: value, UpdateTime: s.now()})
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %s: %w", key, err)
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, key string) error {
	k, err := dynamoKey(key)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       k,
	})
	if err != nil {
		return fmt.Errorf("dynamodb delete %s: %w", key, err)
	}
	return nil
}

func (s *DynamoStore) Exists(ctx context.Context, key string) (bool, error) {
	k, err := dynamoKey(key)
	if err != nil {
		return false, err
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(s.tableName),
		Key:                  k,
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	return out.Item != nil, nil
}

func (s *DynamoStore) Close() error { return nil }
