package domain

import "fmt"

// Field names used by the Categories and Products tables.
const (
	FieldName           = "Name"
	FieldParentCategory = "ParentCategory"
	FieldMainCategory   = "MainCategory"
	FieldSubCategory    = "SubCategory"
	FieldPricePerMeter  = "PricePerMeter"
	FieldImage          = "Image"
)

// Record is a flat row as returned by the record store. Fields carries the
// raw column values keyed by column name; linked-record columns hold lists
// of record ids.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Name returns the display name of the record, or "" when the column is
// missing or malformed.
func (r Record) Name() string {
	return r.String(FieldName)
}

// String returns the named field as a string, or "" if absent.
func (r Record) String(key string) string {
	if v, ok := r.Fields[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// StringList returns the named field as a list of strings. Airtable linked
// records decode as []any of strings; single string values are wrapped.
func (r Record) StringList(key string) []string {
	switch v := r.Fields[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// ListContains reports whether the named list field contains id.
func (r Record) ListContains(key, id string) bool {
	for _, v := range r.StringList(key) {
		if v == id {
			return true
		}
	}
	return false
}

// IsRoot reports whether the record has no parent category, making it a
// top-level category.
func (r Record) IsRoot() bool {
	return len(r.StringList(FieldParentCategory)) == 0
}

// PricePerMeter returns the product price formatted for display, or "" when
// the column is missing. Airtable returns numeric columns as float64.
func (r Record) PricePerMeter() string {
	switch v := r.Fields[FieldPricePerMeter].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	}
	return ""
}

// FirstImageURL returns the url of the first image attachment, or "" when the
// record has none. Attachment columns decode as a list of objects with a
// "url" key.
func (r Record) FirstImageURL() string {
	attachments, ok := r.Fields[FieldImage].([]any)
	if !ok || len(attachments) == 0 {
		return ""
	}
	first, ok := attachments[0].(map[string]any)
	if !ok {
		return ""
	}
	url, _ := first["url"].(string)
	return url
}
