package orders

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a minimal in-memory stand-in for DynamoDB used in unit
// tests. It understands only the expressions the stores issue.
// Items live in tables[tableName][pk].
type fakeDynamo struct {
	mu        sync.Mutex
	tables    map[string]map[string]map[string]types.AttributeValue
	forcedErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (m *fakeDynamo) ensureTable(tbl string) map[string]map[string]types.AttributeValue {
	if _, ok := m.tables[tbl]; !ok {
		m.tables[tbl] = map[string]map[string]types.AttributeValue{}
	}
	return m.tables[tbl]
}

// itemPK extracts the primary key: numeric id for entity tables, string
// name for the counters table.
func itemPK(av map[string]types.AttributeValue) (string, error) {
	if v, ok := av["id"].(*types.AttributeValueMemberN); ok {
		return v.Value, nil
	}
	if v, ok := av["name"].(*types.AttributeValueMemberS); ok {
		return v.Value, nil
	}
	return "", errors.New("no key attribute")
}

func (m *fakeDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tbl := m.ensureTable(*params.TableName)
	pk, err := itemPK(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := tbl[pk]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *fakeDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tbl := m.ensureTable(*params.TableName)
	pk, err := itemPK(params.Item)
	if err != nil {
		return nil, err
	}
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(id)" {
		if _, exists := tbl[pk]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	tbl[pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *fakeDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tbl := m.ensureTable(*params.TableName)
	pk, err := itemPK(params.Key)
	if err != nil {
		return nil, err
	}
	item, exists := tbl[pk]
	expr := *params.UpdateExpression

	// counter increment: ADD #v :one
	if strings.HasPrefix(expr, "ADD ") {
		if !exists {
			item = map[string]types.AttributeValue{}
			for k, v := range params.Key {
				item[k] = v
			}
		}
		attr := params.ExpressionAttributeNames["#v"]
		var cur int64
		if n, ok := item[attr].(*types.AttributeValueMemberN); ok {
			cur, _ = strconv.ParseInt(n.Value, 10, 64)
		}
		inc := int64(1)
		if n, ok := params.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN); ok {
			inc, _ = strconv.ParseInt(n.Value, 10, 64)
		}
		item[attr] = &types.AttributeValueMemberN{Value: strconv.FormatInt(cur+inc, 10)}
		tbl[pk] = item
		return &dyn.UpdateItemOutput{Attributes: item}, nil
	}

	// sparse SET patch guarded by attribute_exists(id)
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_exists(id)" && !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if !exists {
		return nil, errors.New("item not found")
	}
	for _, clause := range strings.Split(strings.TrimPrefix(expr, "SET "), ", ") {
		parts := strings.Split(clause, " = ")
		if len(parts) != 2 {
			return nil, errors.New("unsupported update expression: " + expr)
		}
		name := parts[0]
		if actual, ok := params.ExpressionAttributeNames[name]; ok {
			name = actual
		}
		item[name] = params.ExpressionAttributeValues[parts[1]]
	}
	tbl[pk] = item
	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

func (m *fakeDynamo) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tbl := m.ensureTable(*params.TableName)
	pk, err := itemPK(params.Key)
	if err != nil {
		return nil, err
	}
	item, exists := tbl[pk]
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_exists(id)" && !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	delete(tbl, pk)
	return &dyn.DeleteItemOutput{Attributes: item}, nil
}

func (m *fakeDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tbl := m.ensureTable(*params.TableName)
	out := &dyn.ScanOutput{}
	for _, item := range tbl {
		out.Items = append(out.Items, item)
	}
	return out, nil
}
