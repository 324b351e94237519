// Package sequence hands out store-assigned integer identifiers backed by a
// DynamoDB counters table. Counters only grow, so an id is never reused even
// after the row it named is deleted.
package sequence

import (
	"context"
	"fmt"
	"strconv"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ltavares/go-cafeteria-api/internal/aws"
)

// Allocator allocates ids from named counters in a single DynamoDB table.
// One counter item per logical table, keyed by name.
type Allocator struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewAllocator returns an Allocator bound to the counters table.
func NewAllocator(client aws.DynamoDBAPI, tableName string) *Allocator {
	return &Allocator{
		client:    client,
		tableName: tableName,
	}
}

// Next atomically increments the named counter and returns its new value.
// ADD creates the counter item on first use, so the first id is 1.
func (a *Allocator) Next(ctx context.Context, name string) (int64, error) {
	input := &dyn.UpdateItemInput{
		TableName: &a.tableName,
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: awsString("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	out, err := a.client.UpdateItem(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", name, err)
	}

	attr, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: missing value attribute", name)
	}
	id, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s: parse value %q: %w", name, attr.Value, err)
	}
	return id, nil
}

func awsString(s string) *string { return &s }
