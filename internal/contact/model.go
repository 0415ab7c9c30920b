package contact

import (
	"fmt"
	"strings"

	"github.com/agendalabs/contacts-api/internal/pkg/apperr"
)

// Mode selects which required-field policy applies during construction.
type Mode int

const (
	// ModeInsert requires every required field to be populated.
	ModeInsert Mode = iota

	// ModeUpdate accepts any subset of fields; populated values must
	// still pass type and pattern checks. The service rejects an update
	// that populates nothing at all.
	ModeUpdate
)

// Contact is a validated, per-request entity instance. Every schema field
// has a slot; absent fields hold nil rather than being missing keys.
// Instances live for a single request and are never cached.
type Contact struct {
	values map[string]any
}

// New validates fields against the schema in declaration order and returns
// a fully validated instance or the first validation failure encountered.
// Validation is fail-fast: callers surface one message at a time.
func New(fields map[string]any, mode Mode) (*Contact, error) {
	values := make(map[string]any, len(schema))

	for _, rule := range schema {
		value, present := fields[rule.Name]
		if value == nil {
			present = false
		}

		if !present {
			if mode == ModeInsert && rule.Required {
				return nil, apperr.Validationf(rule.Name, "field %q is required", rule.Name)
			}
			values[rule.Name] = nil
			continue
		}

		s, ok := value.(string)
		if !ok {
			return nil, apperr.Validationf(rule.Name,
				"field %q must be of type %s, received %s", rule.Name, rule.Type, typeName(value))
		}

		if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
			return nil, apperr.Validationf(rule.Name, "field %q has an invalid format", rule.Name)
		}

		values[rule.Name] = s
	}

	return &Contact{values: values}, nil
}

// typeName reports the JSON-level type of a decoded payload value.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ToMap returns the field→value mapping with absent fields mapped to nil.
// Iterate Fields() when declaration order matters.
func (c *Contact) ToMap() map[string]any {
	out := make(map[string]any, len(schema))
	for _, rule := range schema {
		out[rule.Name] = c.values[rule.Name]
	}
	return out
}

// BindValues returns the present field values only, in schema order, for
// use as positional query parameters.
func (c *Contact) BindValues() []any {
	vals := make([]any, 0, len(schema))
	for _, rule := range schema {
		if v := c.values[rule.Name]; v != nil {
			vals = append(vals, v)
		}
	}
	return vals
}

// insertFields selects the field names an INSERT must cover: required
// fields (always populated in insert mode by construction) plus optional
// fields that were supplied.
func (c *Contact) insertFields() []string {
	fields := make([]string, 0, len(schema))
	for _, rule := range schema {
		if rule.Required || c.values[rule.Name] != nil {
			fields = append(fields, rule.Name)
		}
	}
	return fields
}

// FieldsForInsert renders the INSERT column list as a comma-joined
// sequence of bare field names in schema order.
func (c *Contact) FieldsForInsert() string {
	return strings.Join(c.insertFields(), ", ")
}

// FieldsForUpdate renders `name = ?` fragments for populated fields only,
// comma-joined in schema order. Absent fields are omitted entirely so a
// partial update touches nothing else.
func (c *Contact) FieldsForUpdate() string {
	fragments := make([]string, 0, len(schema))
	for _, rule := range schema {
		if c.values[rule.Name] != nil {
			fragments = append(fragments, rule.Name+" = ?")
		}
	}
	return strings.Join(fragments, ", ")
}

// Placeholders renders one positional placeholder per FieldsForInsert
// column; count and order match BindValues exactly.
func (c *Contact) Placeholders() string {
	n := len(c.insertFields())
	if n == 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// IsEmpty reports whether every field is absent or an empty string.
// Used as a precondition gate before attempting an update.
func (c *Contact) IsEmpty() bool {
	for _, rule := range schema {
		if v := c.values[rule.Name]; v != nil && v != "" {
			return false
		}
	}
	return true
}
