package ddb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// mockAPI is a mock implementation of API for testing.
type mockAPI struct {
	getItemFunc       func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	putItemFunc       func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	deleteItemFunc    func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	describeTableFunc func(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

func (m *mockAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.getItemFunc != nil {
		return m.getItemFunc(ctx, params, optFns...)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (m *mockAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.putItemFunc != nil {
		return m.putItemFunc(ctx, params, optFns...)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.deleteItemFunc != nil {
		return m.deleteItemFunc(ctx, params, optFns...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (m *mockAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.describeTableFunc != nil {
		return m.describeTableFunc(ctx, params, optFns...)
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func newTestClient(t *testing.T, mock *mockAPI) *Client {
	t.Helper()
	cfg := aws.Config{}
	c := New(&cfg, "test-table", WithAPI(mock))
	require.NoError(t, c.Connect())
	return c
}

func TestConnect_InvalidOptions(t *testing.T) {
	t.Parallel()
	cfg := aws.Config{}
	c := New(&cfg, "test-table", WithAPI(&mockAPI{}), WithEndpoint("http://localhost:8000"))
	require.Error(t, c.Connect())
}

func TestInit_ValidSchema(t *testing.T) {
	t.Parallel()
	mock := &mockAPI{
		describeTableFunc: func(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
			return &dynamodb.DescribeTableOutput{
				Table: &dynamodbtypes.TableDescription{
					TableStatus: dynamodbtypes.TableStatusActive,
					KeySchema: []dynamodbtypes.KeySchemaElement{
						{AttributeName: aws.String(PartitionKey)},
					},
				},
			}, nil
		},
	}
	c := newTestClient(t, mock)
	require.NoError(t, c.Init(context.Background(), false))
}

func TestInit_WrongKey(t *testing.T) {
	t.Parallel()
	mock := &mockAPI{
		describeTableFunc: func(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
			return &dynamodb.DescribeTableOutput{
				Table: &dynamodbtypes.TableDescription{
					TableStatus: dynamodbtypes.TableStatusActive,
					KeySchema: []dynamodbtypes.KeySchemaElement{
						{AttributeName: aws.String("pk")},
					},
				},
			}, nil
		},
	}
	c := newTestClient(t, mock)
	err := c.Init(context.Background(), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "partition key")
}

func TestInit_Skip(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, &mockAPI{
		describeTableFunc: func(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
			t.Fatal("DescribeTable should not be called when skipping")
			return nil, nil
		},
	})
	require.NoError(t, c.Init(context.Background(), true))
}

func TestGetAttributes_AbsentItem(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, &mockAPI{})

	body, err := c.GetAttributes(context.Background(), "amzn1.ask.account.x")
	require.NoError(t, err)
	require.Nil(t, body)
}

func TestGetAttributes_Roundtrip(t *testing.T) {
	t.Parallel()
	var captured *dynamodb.GetItemInput
	mock := &mockAPI{
		getItemFunc: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			captured = params
			return &dynamodb.GetItemOutput{
				Item: map[string]dynamodbtypes.AttributeValue{
					PartitionKey:   &dynamodbtypes.AttributeValueMemberS{Value: "u1"},
					AttributesAttr: &dynamodbtypes.AttributeValueMemberS{Value: `{"3-15":{"2020":["laurea"]}}`},
				},
			}, nil
		},
	}
	c := newTestClient(t, mock)

	body, err := c.GetAttributes(context.Background(), "u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"3-15":{"2020":["laurea"]}}`, string(body))

	require.NotNil(t, captured)
	require.Equal(t, "test-table", aws.ToString(captured.TableName))
	require.True(t, aws.ToBool(captured.ConsistentRead))
	pk, ok := captured.Key[PartitionKey].(*dynamodbtypes.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "u1", pk.Value)
}

func TestGetAttributes_EmptyID(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, &mockAPI{})
	_, err := c.GetAttributes(context.Background(), "")
	require.Error(t, err)
}

func TestPutAttributes_WritesBothAttrs(t *testing.T) {
	t.Parallel()
	var captured *dynamodb.PutItemInput
	mock := &mockAPI{
		putItemFunc: func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			captured = params
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	c := newTestClient(t, mock)

	require.NoError(t, c.PutAttributes(context.Background(), "u1", []byte(`{}`)))
	require.NotNil(t, captured)

	pk, ok := captured.Item[PartitionKey].(*dynamodbtypes.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "u1", pk.Value)
	body, ok := captured.Item[AttributesAttr].(*dynamodbtypes.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, `{}`, body.Value)
}

func TestPutAttributes_Error(t *testing.T) {
	t.Parallel()
	mock := &mockAPI{
		putItemFunc: func(_ context.Context, _ *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("throttled")
		},
	}
	c := newTestClient(t, mock)
	err := c.PutAttributes(context.Background(), "u1", []byte(`{}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "test-table")
}

func TestDeleteAttributes(t *testing.T) {
	t.Parallel()
	var captured *dynamodb.DeleteItemInput
	mock := &mockAPI{
		deleteItemFunc: func(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			captured = params
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	c := newTestClient(t, mock)

	require.NoError(t, c.DeleteAttributes(context.Background(), "u1"))
	require.NotNil(t, captured)
	pk, ok := captured.Key[PartitionKey].(*dynamodbtypes.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "u1", pk.Value)
}
