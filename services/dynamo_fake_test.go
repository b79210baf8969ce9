package services

import (
	"cinder_server/models"
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoClient is an in-memory stand-in for the DynamoDB client.
// It understands the access patterns the services actually use: point
// reads/writes by key, partition queries sorted by sort key, full
// scans, and transactional puts.
type fakeDynamoClient struct {
	mu            sync.Mutex
	tables        map[string]*fakeTable
	failNext      error                  // injected on the next write call
	failNextQuery error                  // injected on the next Query call
	afterQuery    func(tableName string) // runs once, after the next query's result is taken
}

type fakeTable struct {
	pk    string
	sk    string
	items map[string]map[string]types.AttributeValue
}

func newFakeDynamoClient() *fakeDynamoClient {
	return &fakeDynamoClient{
		tables: map[string]*fakeTable{
			models.UsersTable:          {pk: "uid", items: map[string]map[string]types.AttributeValue{}},
			models.SwipesTable:         {pk: "uid", items: map[string]map[string]types.AttributeValue{}},
			models.MatchesTable:        {pk: "ownerId", sk: "uid", items: map[string]map[string]types.AttributeValue{}},
			models.MessagesTable:       {pk: "conversationId", sk: "sortKey", items: map[string]map[string]types.AttributeValue{}},
			models.RecentMessagesTable: {pk: "ownerId", sk: "uid", items: map[string]map[string]types.AttributeValue{}},
		},
	}
}

func attrString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func (t *fakeTable) keyOf(item map[string]types.AttributeValue) string {
	key := attrString(item, t.pk)
	if t.sk != "" {
		key += "|" + attrString(item, t.sk)
	}
	return key
}

func (f *fakeDynamoClient) table(name *string) (*fakeTable, error) {
	if name == nil {
		return nil, errors.New("fake: missing table name")
	}
	t, ok := f.tables[*name]
	if !ok {
		return nil, errors.New("fake: unknown table " + *name)
	}
	return t, nil
}

func (f *fakeDynamoClient) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeDynamoClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	item, ok := t.items[t.keyOf(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamoClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	t, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	t.items[t.keyOf(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	delete(t.items, t.keyOf(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// Query supports the partition-key equality conditions the services
// issue: exactly one expression value, compared against the table's
// partition key, results ordered by sort key.
func (f *fakeDynamoClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failNextQuery; err != nil {
		f.failNextQuery = nil
		return nil, err
	}
	t, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	if len(params.ExpressionAttributeValues) != 1 {
		return nil, errors.New("fake: expected exactly one expression value")
	}

	var pkValue string
	for _, v := range params.ExpressionAttributeValues {
		pkValue = attrStringValue(v)
	}

	var items []map[string]types.AttributeValue
	for _, item := range t.items {
		if attrString(item, t.pk) == pkValue {
			items = append(items, item)
		}
	}

	ascending := params.ScanIndexForward == nil || *params.ScanIndexForward
	sort.Slice(items, func(i, j int) bool {
		if ascending {
			return attrString(items[i], t.sk) < attrString(items[j], t.sk)
		}
		return attrString(items[i], t.sk) > attrString(items[j], t.sk)
	})

	if params.Limit != nil && int(*params.Limit) < len(items) {
		items = items[:*params.Limit]
	}

	// The hook runs with the result already taken and the lock released,
	// so it can issue further calls against the fake.
	if hook := f.afterQuery; hook != nil {
		f.afterQuery = nil
		f.mu.Unlock()
		hook(*params.TableName)
		f.mu.Lock()
	}

	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamoClient) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	var items []map[string]types.AttributeValue
	for _, item := range t.items {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

// TransactWriteItems applies every put or none.
func (f *fakeDynamoClient) TransactWriteItems(_ context.Context, params *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	// Validate first so a bad element aborts the whole batch.
	for _, item := range params.TransactItems {
		if item.Put == nil {
			return nil, errors.New("fake: only Put transact items are supported")
		}
		if _, err := f.table(item.Put.TableName); err != nil {
			return nil, err
		}
	}
	for _, item := range params.TransactItems {
		t, _ := f.table(item.Put.TableName)
		t.items[t.keyOf(item.Put.Item)] = item.Put.Item
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func attrStringValue(v types.AttributeValue) string {
	if s, ok := v.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
