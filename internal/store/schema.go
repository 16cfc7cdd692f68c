package store

import (
	"context"
	"fmt"
	"strings"
)

// idColumn is the canonical name of the identifier column. Row location
// requires it; sheets without it are readable but never locatable.
const idColumn = "Id"

// HeaderMap maps canonical field names to zero-based column indexes.
// It is rebuilt from the header row on every operation, never cached.
type HeaderMap map[string]int

// SchemaResolver derives a HeaderMap from a sheet's first row. Header
// text is matched case-insensitively against an alias table supplied at
// construction; unmatched text passes through unchanged, which lets
// sheets whose headers already equal field names work without aliases.
type SchemaResolver struct {
	gw      Gateway
	aliases map[string]string
}

// NewSchemaResolver builds a resolver. Alias keys are header text as it
// appears in the sheet; values are canonical field names.
func NewSchemaResolver(gw Gateway, aliases map[string]string) *SchemaResolver {
	lowered := make(map[string]string, len(aliases))
	for header, canonical := range aliases {
		lowered[strings.ToLower(header)] = canonical
	}
	return &SchemaResolver{gw: gw, aliases: lowered}
}

// Resolve reads the sheet's used range and splits it into a HeaderMap
// built from row 0 and the remaining rows, unprocessed. An empty sheet
// yields an empty map and no rows; that is "no data", not a failure.
//
// Columns with empty header cells are skipped. If two header cells
// resolve to the same canonical name the later column wins; this
// ambiguity is accepted, not surfaced as an error.
func (r *SchemaResolver) Resolve(ctx context.Context, sheetName string) (HeaderMap, [][]interface{}, error) {
	values, err := r.gw.Read(ctx, sheetRange(sheetName))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve schema of %s: %w", sheetName, err)
	}
	if len(values) == 0 {
		return HeaderMap{}, nil, nil
	}

	headers := make(HeaderMap)
	for i, cell := range values[0] {
		text := strings.TrimSpace(cellString(cell))
		if text == "" {
			continue
		}
		name := text
		if canonical, ok := r.aliases[strings.ToLower(text)]; ok {
			name = canonical
		}
		headers[name] = i
	}
	return headers, values[1:], nil
}
