package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Andylue11/RFMS-PDF-Xtracr--sub000/constants"
)

var contactTypes = []string{
	string(constants.ContactBest),
	string(constants.ContactAuthorised),
	string(constants.ContactRealEstateAgent),
	string(constants.ContactTenant),
	string(constants.ContactSite),
}

// RecordKeys lists the JSON keys every serialized Record must carry.
func RecordKeys() []string {
	t := reflect.TypeOf(Record{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, opts, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" || strings.Contains(opts, "omitempty") {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

// BuildRecordJSONSchema returns the record JSON-Schema as a generic map.
func BuildRecordJSONSchema() map[string]any {
	props := map[string]any{}
	t := reflect.TypeOf(Record{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		props[name] = map[string]any{"type": "string"}
	}

	props["dollar_value"] = map[string]any{"type": "number", "minimum": 0}
	props["extra_phones"] = uniqueStrings()
	props["extra_emails"] = uniqueStrings()
	props["alternate_contacts"] = map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"type":  map[string]any{"type": "string", "enum": contactTypes},
				"name":  map[string]any{"type": "string"},
				"phone": map[string]any{"type": "string"},
				"email": map[string]any{"type": "string"},
			},
			"required": []string{"type", "name", "phone", "email"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             RecordKeys(),
	}
}

func uniqueStrings() map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"uniqueItems": true,
	}
}

var recordSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("record.json")
})

// ValidateRecordJSON validates serialized record bytes against the record schema.
func ValidateRecordJSON(data []byte) error {
	schema, err := recordSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// Validate marshals r and validates it against the record schema.
func (r *Record) Validate() error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return ValidateRecordJSON(b)
}
