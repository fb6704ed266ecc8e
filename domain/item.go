// Package domain holds the persisted record types and their create-request
// shapes. Records are plain data: identity and timestamps are assigned by the
// service and storage layers, never by clients.
package domain

import (
	"hmaas-backend/pkg/schema"
)

// ItemSchema describes the stored shape of an item for the validation boundary.
var ItemSchema = schema.Definition{
	EntityType:  "item",
	IDAttribute: "itemId",
}

// Item is a persisted item record.
type Item struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`

	// Extra preserves stored attributes this version of the code does not
	// model; they are carried through reads and writes unchanged.
	Extra map[string]any `json:"-"`
}

// MarshalJSON inlines preserved unknown attributes next to the known fields.
func (i Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return schema.MarshalWithExtra(alias(i), i.Extra)
}

// ItemFromRecord builds an Item from a validated record.
func ItemFromRecord(rec schema.Record) Item {
	return Item{
		ItemID:      rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Extra:       rec.Extra,
	}
}

// CreateItemRequest is the client payload for creating an item.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
}
