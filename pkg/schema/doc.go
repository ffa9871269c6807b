// Package schema provides a small type system for checking loosely typed
// data before it is decoded into Go structs.
//
// It defines built-in types (string, scalar, int, bool, map, any) plus
// slices and custom validators. Schemas map field names to types.
//
// Two entry points are offered. Validate is strict: every field is required
// and any mismatch is an error. Sanitize is lenient: it keeps what conforms
// and reports the rest, which suits generator output that is mostly right:
//
//	tabSchema := schema.Schema{
//	    "id":         schema.String(),
//	    "label":      schema.Scalar(),
//	    "components": schema.Slice(schema.Any()),
//	}
//
//	clean, err := schema.Sanitize(tabSchema, raw)
//	for _, w := range schema.ValidationErrors(err) {
//	    log.Println("dropped:", w)
//	}
//
// This package has no dependencies beyond the Go standard library.
package schema
