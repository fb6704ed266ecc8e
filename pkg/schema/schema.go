// Package schema is the validation boundary between the application and the
// datastore. Every payload read back from storage passes through a Definition
// before the rest of the system is allowed to treat it as a Record.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Issue describes a single field-level validation problem.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Record is the canonical validated shape shared by all stored entities.
// Timestamps are canonical strings regardless of how the store encoded them.
type Record struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   string
	UpdatedAt   string
	Extra       map[string]any
}

// Definition describes the stored shape of one entity type.
type Definition struct {
	// EntityType tags rows in the shared table, e.g. "item".
	EntityType string
	// IDAttribute is the entity's id field name, e.g. "itemId".
	IDAttribute string
}

// Parse validates a raw payload against the definition and returns the
// canonical record. Unknown fields are preserved in Record.Extra so that
// attributes this version of the code does not know about survive a
// read-modify-write cycle. A non-empty issue list means the payload is not a
// valid record; the caller decides how loudly to fail.
func (d Definition) Parse(raw map[string]any) (Record, []Issue) {
	var rec Record
	var issues []Issue

	id, ok := asString(raw[d.IDAttribute])
	if !ok || id == "" {
		issues = append(issues, Issue{Path: d.IDAttribute, Message: "required string field is missing or not a string"})
	}
	rec.ID = id

	name, ok := asString(raw["name"])
	if !ok || name == "" {
		issues = append(issues, Issue{Path: "name", Message: "required string field is missing or not a string"})
	}
	rec.Name = name

	if v, present := raw["description"]; present && v != nil {
		desc, ok := asString(v)
		if !ok {
			issues = append(issues, Issue{Path: "description", Message: "must be a string or null"})
		} else {
			rec.Description = &desc
		}
	}

	if v, present := raw["createdAt"]; present {
		ts, ok := CoerceTimestamp(v)
		if !ok {
			issues = append(issues, Issue{Path: "createdAt", Message: "must be a string or numeric timestamp"})
		}
		rec.CreatedAt = ts
	} else {
		issues = append(issues, Issue{Path: "createdAt", Message: "required timestamp field is missing"})
	}

	if v, present := raw["updatedAt"]; present && v != nil {
		ts, ok := CoerceTimestamp(v)
		if !ok {
			issues = append(issues, Issue{Path: "updatedAt", Message: "must be a string or numeric timestamp"})
		}
		rec.UpdatedAt = ts
	}

	for k, v := range raw {
		switch k {
		case d.IDAttribute, "name", "description", "createdAt", "updatedAt":
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]any)
		}
		rec.Extra[k] = v
	}

	if len(issues) > 0 {
		return Record{}, issues
	}
	return rec, nil
}

// CoerceTimestamp converts the heterogeneous timestamp representations the
// store may hand back (ISO strings from old rows, epoch-millisecond numbers
// from new ones) into a canonical string.
func CoerceTimestamp(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int:
		return strconv.Itoa(t), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

// MarshalWithExtra serializes a known struct and inlines the preserved
// unknown fields alongside it. Known fields win on collision.
func MarshalWithExtra(known any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, fmt.Errorf("remarshal of known fields failed: %w", err)
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
