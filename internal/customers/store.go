package customers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/ltavares/go-cafeteria-api/internal/aws"
	"github.com/ltavares/go-cafeteria-api/internal/sequence"
)

// ErrNotFound indicates the referenced customer does not exist.
var ErrNotFound = errors.New("cliente não encontrado")

// Store encapsulates operations on the customers table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	seq       *sequence.Allocator
	nowFunc   func() time.Time
}

// NewStore creates a customers Store.
func NewStore(client aws.DynamoDBAPI, tableName string, seq *sequence.Allocator) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		seq:       seq,
		nowFunc:   time.Now,
	}
}

// Get fetches a customer by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, id int64) (*Customer, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       idKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var c Customer
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	return &c, nil
}

// List returns every customer, ascending by id.
func (s *Store) List(ctx context.Context) ([]Customer, error) {
	var items []Customer
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var page []Customer
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal customers: %w", err)
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Insert allocates an id, stamps the registration date and writes the
// customer.
func (s *Store) Insert(ctx context.Context, c Customer) (*Customer, error) {
	id, err := s.seq.Next(ctx, s.tableName)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if c.RegisteredAt == "" {
		c.RegisteredAt = s.nowFunc().UTC().Format("2006-01-02")
	}

	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return nil, fmt.Errorf("marshal customer: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("put item: %w", err)
	}
	return &c, nil
}

// Update applies a sparse patch and returns the updated customer.
// Returns ErrNotFound if no customer has the given id.
func (s *Store) Update(ctx context.Context, id int64, patch Patch) (*Customer, error) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var sets []string
	set := func(attr string, av types.AttributeValue) {
		names["#"+attr] = attr
		values[":"+attr] = av
		sets = append(sets, "#"+attr+" = :"+attr)
	}

	if patch.Name != nil {
		set("nome", &types.AttributeValueMemberS{Value: *patch.Name})
	}
	if patch.Email != nil {
		set("email", &types.AttributeValueMemberS{Value: *patch.Email})
	}
	if patch.Phone != nil {
		set("telefone", &types.AttributeValueMemberS{Value: *patch.Phone})
	}

	if len(sets) == 0 {
		c, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, ErrNotFound
		}
		return c, nil
	}

	expr := "SET " + strings.Join(sets, ", ")
	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName:                 &s.tableName,
		Key:                       idKey(id),
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       awsString("attribute_exists(id)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}

	var c Customer
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	return &c, nil
}

// Delete removes a customer and returns the removed record.
// Returns ErrNotFound if no customer has the given id.
func (s *Store) Delete(ctx context.Context, id int64) (*Customer, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName:           &s.tableName,
		Key:                 idKey(id),
		ConditionExpression: awsString("attribute_exists(id)"),
		ReturnValues:        types.ReturnValueAllOld,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}

	var c Customer
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	return &c, nil
}

func isConditionalCheckFailed(err error) bool {
	var ae smithy.APIError
	return errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException"
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func awsString(s string) *string { return &s }
