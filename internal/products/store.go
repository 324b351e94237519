package products

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ltavares/go-cafeteria-api/internal/aws"
	"github.com/ltavares/go-cafeteria-api/internal/sequence"
)

// ErrNotFound indicates the referenced product does not exist.
var ErrNotFound = errors.New("produto não encontrado")

// Store encapsulates operations on the products table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	seq       *sequence.Allocator
}

// NewStore creates a products Store.
func NewStore(client aws.DynamoDBAPI, tableName string, seq *sequence.Allocator) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		seq:       seq,
	}
}

// Get fetches a product by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, id int64) (*Product, error) {
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
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// List returns every product, ascending by id.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	var items []Product
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var page []Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
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

// Insert allocates an id and writes the product. The guard against an
// existing id should never fire given counters only grow; if it does, the
// error surfaces as an infrastructure failure.
func (s *Store) Insert(ctx context.Context, p Product) (*Product, error) {
	id, err := s.seq.Next(ctx, s.tableName)
	if err != nil {
		return nil, err
	}
	p.ID = id

	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("put item: %w", err)
	}
	return &p, nil
}

// Update applies a sparse patch and returns the updated product.
// Returns ErrNotFound if no product has the given id.
func (s *Store) Update(ctx context.Context, id int64, patch Patch) (*Product, error) {
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
	if patch.Category != nil {
		set("categoria", &types.AttributeValueMemberS{Value: *patch.Category})
	}
	if patch.Price != nil {
		set("preco", &types.AttributeValueMemberN{Value: strconv.FormatFloat(*patch.Price, 'f', -1, 64)})
	}
	if patch.Description != nil {
		set("descricao", &types.AttributeValueMemberS{Value: *patch.Description})
	}
	if patch.Stock != nil {
		set("estoque", &types.AttributeValueMemberN{Value: strconv.Itoa(*patch.Stock)})
	}

	// Empty patch: nothing to write, but the caller still expects the
	// current record or a not-found.
	if len(sets) == 0 {
		p, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrNotFound
		}
		return p, nil
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
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}

	var p Product
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// Delete removes a product and returns the removed record.
// Returns ErrNotFound if no product has the given id.
func (s *Store) Delete(ctx context.Context, id int64) (*Product, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName:           &s.tableName,
		Key:                 idKey(id),
		ConditionExpression: awsString("attribute_exists(id)"),
		ReturnValues:        types.ReturnValueAllOld,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}

	var p Product
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func awsString(s string) *string { return &s }
