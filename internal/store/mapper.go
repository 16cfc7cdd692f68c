package store

import (
	"context"

	"github.com/finvault/sheetdb/internal/logging"
)

// Mapper is the bidirectional codec between a typed entity and an
// ordered cell sequence, driven by the entity's field descriptor table
// and a codec profile.
type Mapper[T any] struct {
	fields  []FieldSpec[T]
	profile Profile
}

// NewMapper builds a mapper from a descriptor table and profile.
func NewMapper[T any](fields []FieldSpec[T], profile Profile) *Mapper[T] {
	return &Mapper[T]{fields: fields, profile: profile}
}

// Decode maps one row into an entity. Decoding is best-effort and
// field-isolated: a cell that cannot be coerced to its field's type is
// logged and leaves that field at its zero value without affecting any
// other field or aborting the row. Fields whose column is absent from
// the map, or beyond the row's length, are left untouched.
func (m *Mapper[T]) Decode(ctx context.Context, row []interface{}, headers HeaderMap) T {
	var entity T
	for _, field := range m.fields {
		idx, ok := headers[field.Name]
		if !ok || idx >= len(row) {
			continue
		}
		cell := cellString(row[idx])
		if err := field.decode(&entity, cell, m.profile); err != nil {
			logging.FromContext(ctx).Warn("field conversion failed",
				"field", field.Name, "value", cell, "error", err)
		}
	}
	return entity
}

// Encode maps an entity into a row sized to the header map. Fields with
// no header column are silently dropped, which is lossy when the
// sheet's schema is narrower than the entity. Columns no field claims
// stay empty strings.
func (m *Mapper[T]) Encode(entity *T, headers HeaderMap) []interface{} {
	row := make([]interface{}, len(headers))
	for i := range row {
		row[i] = ""
	}
	for _, field := range m.fields {
		idx, ok := headers[field.Name]
		if !ok || idx >= len(row) {
			continue
		}
		row[idx] = field.encode(entity, m.profile)
	}
	return row
}
