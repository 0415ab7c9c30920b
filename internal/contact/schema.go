// Package contact implements the schema-driven contact entity: field-level
// validation, insert/update projections into parameterized SQL fragments,
// persistence, and the service layer that maps store outcomes into result
// envelopes.
package contact

import "regexp"

// typeString is the only value type the contact schema declares today.
const typeString = "string"

// Rule describes the validation rules for one schema field.
type Rule struct {
	Name     string
	Required bool
	Type     string
	Pattern  *regexp.Regexp
}

var (
	// emailPattern accepts a simple local@domain.tld shape.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern accepts international-dialing numbers: a leading +,
	// a valid country calling code prefix, then 6 to 14 digits.
	phonePattern = regexp.MustCompile(`^\+(?:1|7|2[0-7]|3[0-469]|4[013-9]|5[1-8]|6[0-6]|8[1-469]|9[0-58]|2[89]|5[09]|7[0-7])\d{6,14}$`)
)

// schema is the ordered, process-wide field declaration for a contact.
// It is read-only after initialization; declaration order is the canonical
// order of every SQL projection derived from it.
var schema = []Rule{
	{Name: "name", Required: true, Type: typeString},
	{Name: "lastname", Required: true, Type: typeString},
	{Name: "email", Required: true, Type: typeString, Pattern: emailPattern},
	{Name: "phone", Required: true, Type: typeString, Pattern: phonePattern},
	{Name: "website", Type: typeString},
	{Name: "address", Type: typeString},
	{Name: "company", Type: typeString},
}

// Fields returns the schema field names in declaration order.
func Fields() []string {
	names := make([]string, len(schema))
	for i, r := range schema {
		names[i] = r.Name
	}
	return names
}

// RuleFor returns the rule set for a field name.
func RuleFor(name string) (Rule, bool) {
	for _, r := range schema {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
