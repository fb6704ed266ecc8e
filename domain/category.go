package domain

import (
	"hmaas-backend/pkg/schema"
)

// CategorySchema describes the stored shape of a category for the validation
// boundary.
var CategorySchema = schema.Definition{
	EntityType:  "category",
	IDAttribute: "categoryId",
}

// Category is a persisted category record.
type Category struct {
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`

	Extra map[string]any `json:"-"`
}

// MarshalJSON inlines preserved unknown attributes next to the known fields.
func (c Category) MarshalJSON() ([]byte, error) {
	type alias Category
	return schema.MarshalWithExtra(alias(c), c.Extra)
}

// CategoryFromRecord builds a Category from a validated record.
func CategoryFromRecord(rec schema.Record) Category {
	return Category{
		CategoryID:  rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Extra:       rec.Extra,
	}
}

// CreateCategoryRequest is the client payload for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
}
