package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmaas-backend/pkg/schema"
)

func TestItemMarshalJSON_InlinesExtraAttributes(t *testing.T) {
	item := Item{
		ItemID:    "item-1",
		Name:      "Compass",
		CreatedAt: "1700000000000",
		Extra:     map[string]any{"legacyField": "kept"},
	}

	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"itemId":"item-1","name":"Compass","createdAt":"1700000000000","legacyField":"kept"}`,
		string(b),
	)
}

func TestItemFromRecord(t *testing.T) {
	desc := "A magnetic compass"
	item := ItemFromRecord(schema.Record{
		ID:          "item-1",
		Name:        "Compass",
		Description: &desc,
		CreatedAt:   "1700000000000",
		UpdatedAt:   "1700000000001",
		Extra:       map[string]any{"legacyField": "kept"},
	})

	assert.Equal(t, "item-1", item.ItemID)
	assert.Equal(t, &desc, item.Description)
	assert.Equal(t, "1700000000001", item.UpdatedAt)
	assert.Equal(t, map[string]any{"legacyField": "kept"}, item.Extra)
}

func TestCategoryFromRecord(t *testing.T) {
	category := CategoryFromRecord(schema.Record{
		ID:        "cat-1",
		Name:      "Plumbing",
		CreatedAt: "1700000000000",
	})

	assert.Equal(t, "cat-1", category.CategoryID)
	assert.Equal(t, "Plumbing", category.Name)
	assert.Nil(t, category.Description)
}
