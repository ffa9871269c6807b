package schema

import "sort"

// Schema is a map of field names to their expected types.
// Example: {"id": String(), "order": Int(), "stages": Slice(Any())}
type Schema map[string]Type

// Validate checks if data conforms to the schema.
// Every schema field is required. Returns an error with all validation
// failures found.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	var errs []error

	for _, fieldName := range sortedKeys(schema) {
		fieldType := schema[fieldName]
		value, exists := data[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

// Sanitize returns the subset of data that conforms to the schema.
//
// Missing and null fields are skipped silently. Fields whose value does not
// match their type are dropped and reported in the returned AggregateError,
// which callers are expected to treat as warnings. Fields outside the schema
// are discarded.
func Sanitize(schema Schema, data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(schema))
	var errs []error

	for _, fieldName := range sortedKeys(schema) {
		value, exists := data[fieldName]
		if !exists || value == nil {
			continue
		}
		if err := schema[fieldName].Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
			continue
		}
		out[fieldName] = value
	}

	if len(errs) > 0 {
		return out, &AggregateError{Errors: errs}
	}
	return out, nil
}

func sortedKeys(schema Schema) []string {
	keys := make([]string, 0, len(schema))
	for k := range schema {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
