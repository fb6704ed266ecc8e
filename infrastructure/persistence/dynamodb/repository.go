// Package dynamodb implements the record repositories on a single DynamoDB
// table. Rows are keyed PK/SK with an EntityType attribute used to separate
// entity types during scans.
package dynamodb

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"hmaas-backend/application/ports"
	apperrors "hmaas-backend/pkg/errors"
	"hmaas-backend/pkg/schema"
)

// DefaultPageSize bounds list pages when the caller does not pick a limit.
const DefaultPageSize = 20

// DynamoDBAPI is the subset of the DynamoDB client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Codec defines entity-specific behavior for the generic repository.
type Codec[T any] interface {
	// Definition returns the entity's schema for the validation boundary.
	Definition() schema.Definition
	// ID extracts the entity's id.
	ID(entity T) string
	// FromRecord builds the entity from a validated record.
	FromRecord(rec schema.Record) T
	// Attributes returns the writable fields of the entity. Store-assigned
	// fields (createdAt, updatedAt) must not be included: the repository
	// owns them, whatever the client supplied is discarded.
	Attributes(entity T) map[string]any
}

// Repository provides Create/Get/List/Delete for one entity type.
type Repository[T any] struct {
	client    DynamoDBAPI
	tableName string
	codec     Codec[T]
	logger    *zap.Logger
	now       func() time.Time
}

// NewRepository creates a repository for the codec's entity type.
func NewRepository[T any](client DynamoDBAPI, tableName string, codec Codec[T], logger *zap.Logger) *Repository[T] {
	return &Repository[T]{
		client:    client,
		tableName: tableName,
		codec:     codec,
		logger:    logger,
		now:       time.Now,
	}
}

// Create writes the entity with store-assigned timestamps and returns the
// record as persisted. The written attribute map is passed back through the
// validation boundary so the caller gets what the table actually holds, not
// the input echoed back.
func (r *Repository[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	def := r.codec.Definition()
	id := r.codec.ID(entity)

	attrs := r.codec.Attributes(entity)
	nowMillis := r.now().UnixMilli()
	attrs["createdAt"] = nowMillis
	attrs["updatedAt"] = nowMillis

	item, err := attributevalue.MarshalMap(attrs)
	if err != nil {
		return zero, err
	}
	for k, v := range r.key(def, id) {
		item[k] = v
	}
	item["EntityType"] = &types.AttributeValueMemberS{Value: def.EntityType}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return zero, err
	}

	r.logger.Debug("Record created",
		zap.String("entityType", def.EntityType),
		zap.String("id", id),
	)

	return r.parse(item)
}

// Get retrieves an entity by id. Absence is nil without an error.
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	def := r.codec.Definition()

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(def, id),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	entity, err := r.parse(out.Item)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// List scans one page of the entity type. Every returned item is validated;
// a single malformed row fails the whole call rather than producing a
// partial result.
func (r *Repository[T]) List(ctx context.Context, opts ports.ListOptions) (ports.Page[T], error) {
	var page ports.Page[T]
	def := r.codec.Definition()

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	filter := expression.Name("EntityType").Equal(expression.Value(def.EntityType))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return page, err
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(limit),
	}
	if opts.Cursor != nil && *opts.Cursor != "" {
		startKey, err := decodeCursor(*opts.Cursor)
		if err != nil {
			return page, apperrors.NewBadRequestError("Invalid cursor").WithCause(err)
		}
		input.ExclusiveStartKey = startKey
	}

	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return page, err
	}

	items := make([]T, 0, len(out.Items))
	for _, raw := range out.Items {
		entity, err := r.parse(raw)
		if err != nil {
			return ports.Page[T]{}, err
		}
		items = append(items, entity)
	}
	page.Items = items

	if len(out.LastEvaluatedKey) > 0 {
		cursor, err := encodeCursor(out.LastEvaluatedKey)
		if err != nil {
			return ports.Page[T]{}, err
		}
		page.Cursor = &cursor
	}

	return page, nil
}

// Delete removes the entity by id. No precondition: deleting an absent id
// succeeds.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	def := r.codec.Definition()

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(def, id),
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Record deleted",
		zap.String("entityType", def.EntityType),
		zap.String("id", id),
	)
	return nil
}

// parse runs a raw table row through the validation boundary. Failures are
// logged with the offending payload and surfaced as data-integrity errors.
func (r *Repository[T]) parse(item map[string]types.AttributeValue) (T, error) {
	var zero T
	def := r.codec.Definition()

	raw, err := unmarshalAttributes(item)
	if err != nil {
		return zero, err
	}

	rec, issues := def.Parse(raw)
	if len(issues) > 0 {
		r.logger.Error("Data validation failed reading from DynamoDB",
			zap.String("entityType", def.EntityType),
			zap.Any("issues", issues),
			zap.Any("data", raw),
		)
		return zero, apperrors.NewDataIntegrityError(def.EntityType, issues, raw)
	}
	return r.codec.FromRecord(rec), nil
}

func (r *Repository[T]) key(def schema.Definition, id string) map[string]types.AttributeValue {
	prefix := strings.ToUpper(def.EntityType)
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: prefix + "#" + id},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	}
}
