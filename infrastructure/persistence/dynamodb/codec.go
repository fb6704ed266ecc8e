package dynamodb

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table-internal attributes that never leave this package.
var internalAttributes = map[string]struct{}{
	"PK":         {},
	"SK":         {},
	"EntityType": {},
}

// unmarshalAttributes converts a table row into the untyped payload the
// validation boundary consumes, dropping key and bookkeeping attributes.
func unmarshalAttributes(item map[string]types.AttributeValue) (map[string]any, error) {
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return nil, err
	}
	for k := range internalAttributes {
		delete(raw, k)
	}
	return raw, nil
}

// encodeCursor turns a LastEvaluatedKey into the opaque continuation token
// handed to clients. The token is only ever decoded back by decodeCursor;
// nothing outside this package interprets it.
func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	var plain map[string]any
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", err
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// decodeCursor reverses encodeCursor into an ExclusiveStartKey.
func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, err
	}
	var plain map[string]any
	if err := json.Unmarshal(b, &plain); err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(plain)
}
