// Package ddb wraps the DynamoDB client behind the narrow surface the skill
// persistence layer needs: one item per user identity, whole-record reads and
// writes.
package ddb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// PartitionKey is the DynamoDB partition key attribute name. The table has
	// a simple primary key: one item per user identity.
	PartitionKey = "id"

	// AttributesAttr is the attribute name holding the JSON-encoded event
	// record for a user.
	AttributesAttr = "attributes"
)

// API is the subset of the DynamoDB client used by this package.
// Narrow on purpose so tests can inject a fake.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Client is a DynamoDB-backed attribute store. Use [New] to create one,
// [Client.Connect] to initialize the underlying connection, and
// [Client.Init] to validate the table schema.
type Client struct {
	api    API
	table  string
	awsCfg *aws.Config
	opts   *Options
}

// New creates a Client configured with the given AWS config, table name, and
// optional options. Call [Client.Connect] on the returned client before use.
func New(awsCfg *aws.Config, table string, opts ...Option) *Client {
	options := newOptions()
	for _, o := range opts {
		o(options)
	}
	return &Client{
		awsCfg: awsCfg,
		table:  table,
		opts:   options,
	}
}

// Connect initializes the DynamoDB client from the AWS config provided to
// [New]. It must be called before any other Client methods.
func (c *Client) Connect() error {
	if err := c.opts.validate(); err != nil {
		return fmt.Errorf("invalid DynamoDB options: %w", err)
	}

	// Use injected DynamoDB API if provided (useful for testing).
	if c.opts.api != nil {
		c.api = c.opts.api
		return nil
	}

	c.api = dynamodb.NewFromConfig(*c.awsCfg, func(o *dynamodb.Options) {
		if c.opts.endpoint != "" {
			o.BaseEndpoint = aws.String(c.opts.endpoint)
		}
	})
	return nil
}

// Init validates the DynamoDB table schema: the table exists, is active, and
// has the expected simple primary key. Pass skip true to bypass validation
// when schema management lives elsewhere.
func (c *Client) Init(ctx context.Context, skip bool) error {
	if skip {
		return nil
	}

	out, err := c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(c.table),
	})
	if err != nil {
		var notFound *dynamodbtypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return fmt.Errorf("table %s does not exist", c.table)
		}
		return fmt.Errorf("failed to describe table %s: %w", c.table, err)
	}

	if len(out.Table.KeySchema) != 1 {
		return fmt.Errorf("table %s has a composite primary key, expected simple", c.table)
	}
	if got := aws.ToString(out.Table.KeySchema[0].AttributeName); got != PartitionKey {
		return fmt.Errorf("table %s has partition key %s, expected %s", c.table, got, PartitionKey)
	}
	if out.Table.TableStatus != dynamodbtypes.TableStatusActive {
		return fmt.Errorf("table %s is not active (status: %s)", c.table, out.Table.TableStatus)
	}
	return nil
}

// GetAttributes returns the JSON-encoded attribute body stored for id, or
// (nil, nil) when no item exists yet.
func (c *Client) GetAttributes(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]dynamodbtypes.AttributeValue{
			PartitionKey: &dynamodbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from DynamoDB table %s: %w", c.table, err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	body := getStringValue(out.Item[AttributesAttr])
	if body == "" {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// PutAttributes writes the JSON-encoded attribute body for id, replacing the
// whole item. The write is atomic from the caller's perspective.
func (c *Client) PutAttributes(ctx context.Context, id string, body json.RawMessage) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item: map[string]dynamodbtypes.AttributeValue{
			PartitionKey:   &dynamodbtypes.AttributeValueMemberS{Value: id},
			AttributesAttr: &dynamodbtypes.AttributeValueMemberS{Value: string(body)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write item to DynamoDB table %s: %w", c.table, err)
	}
	return nil
}

// DeleteAttributes removes the item for id. It is a no-op if none exists.
func (c *Client) DeleteAttributes(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	_, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.table),
		Key: map[string]dynamodbtypes.AttributeValue{
			PartitionKey: &dynamodbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from DynamoDB table %s: %w", c.table, err)
	}
	return nil
}

// getStringValue extracts the string value from a DynamoDB AttributeValue.
// It returns an empty string if the AttributeValue is not of type AttributeValueMemberS.
func getStringValue(attr dynamodbtypes.AttributeValue) string {
	if v, ok := attr.(*dynamodbtypes.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
