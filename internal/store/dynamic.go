package store

import (
	"context"
	"fmt"
	"strings"
)

// DefineSheet wraps a typed Definition into a registrable
// SheetDefinition whose Operations work over string field maps. The
// string values use the definition's own codec profile, so a field map
// is exactly one row's cell contents keyed by canonical field name.
func DefineSheet[T any](key, label string, def Definition[T]) SheetDefinition {
	columns := make([]string, len(def.Fields))
	for i, field := range def.Fields {
		columns[i] = field.Name
	}

	return SheetDefinition{
		Info: SheetInfo{
			Key:     key,
			Sheet:   def.Sheet,
			Label:   label,
			Columns: columns,
		},
		Bind: func(gw Gateway, opts ...Option) Operations {
			st := New(gw, def, opts...)
			return Operations{
				GetAll: func(ctx context.Context) ([]map[string]string, error) {
					entities, err := st.GetAll(ctx, def.Sheet)
					if err != nil {
						return nil, err
					}
					rows := make([]map[string]string, len(entities))
					for i := range entities {
						rows[i] = encodeFieldMap(def, &entities[i])
					}
					return rows, nil
				},
				Add: func(ctx context.Context, fields map[string]string) (string, error) {
					var entity T
					if err := applyFieldMap(def, &entity, fields); err != nil {
						return "", err
					}
					created, err := st.Add(ctx, entity, def.Sheet)
					if err != nil {
						return "", err
					}
					return *def.ID(&created), nil
				},
				Update: func(ctx context.Context, id string, fields map[string]string) (bool, error) {
					// Read-modify-write: start from the entity's current
					// state so unmentioned fields keep their values.
					entities, err := st.GetAll(ctx, def.Sheet)
					if err != nil {
						return false, err
					}
					var entity T
					found := false
					for i := range entities {
						if *def.ID(&entities[i]) == id {
							entity = entities[i]
							found = true
							break
						}
					}
					if !found {
						return false, nil
					}
					if err := applyFieldMap(def, &entity, fields); err != nil {
						return false, err
					}
					*def.ID(&entity) = id
					return st.Update(ctx, entity, def.Sheet)
				},
				Delete: func(ctx context.Context, id string) (bool, error) {
					return st.Delete(ctx, id, def.Sheet)
				},
			}
		},
	}
}

// applyFieldMap decodes caller-provided field values into the entity.
// Unlike sheet decoding, this input comes from an operator, so unknown
// field names and unparseable values are reported as errors instead of
// being silently degraded.
func applyFieldMap[T any](def Definition[T], entity *T, fields map[string]string) error {
	for name, value := range fields {
		spec, ok := findField(def, name)
		if !ok {
			return fmt.Errorf("unknown field %q (have %s)", name, strings.Join(fieldNames(def), ", "))
		}
		if err := spec.decode(entity, value, def.Profile); err != nil {
			return fmt.Errorf("field %s: %w", spec.Name, err)
		}
	}
	return nil
}

// encodeFieldMap renders every declared field of the entity in the
// definition's profile.
func encodeFieldMap[T any](def Definition[T], entity *T) map[string]string {
	out := make(map[string]string, len(def.Fields))
	for _, field := range def.Fields {
		out[field.Name] = field.encode(entity, def.Profile)
	}
	return out
}

func findField[T any](def Definition[T], name string) (FieldSpec[T], bool) {
	for _, field := range def.Fields {
		if strings.EqualFold(field.Name, name) {
			return field, true
		}
	}
	return FieldSpec[T]{}, false
}

func fieldNames[T any](def Definition[T]) []string {
	names := make([]string, len(def.Fields))
	for i, field := range def.Fields {
		names[i] = field.Name
	}
	return names
}
