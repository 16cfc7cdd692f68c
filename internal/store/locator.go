package store

import (
	"context"
	"fmt"
)

// location describes where an entity currently lives in its sheet.
type location struct {
	// Row is the 1-based sheet row: data position + 2, accounting for
	// 1-based addressing and the header row.
	Row int

	// SheetID is the sheet's numeric structural id, valid only when
	// HasSheetID is set. Structural row deletion needs it; in-place
	// updates do not.
	SheetID    int64
	HasSheetID bool
}

// locator resolves an entity id to its current row position. Every call
// re-reads the sheet; a location is stale the moment a concurrent
// structural delete lands on the same sheet.
type locator struct {
	gw       Gateway
	resolver *SchemaResolver
}

// locate scans the sheet for the first row whose Id column exactly
// equals id. The boolean result is false when the sheet has no Id
// column or no row matches; that is a normal outcome, not an error.
// Duplicate ids beyond the first match are never reached.
//
// On a match the sheet's numeric id is resolved by a separate metadata
// call. A sheet name missing from the metadata leaves HasSheetID false
// while the location itself is still returned.
func (l *locator) locate(ctx context.Context, id, sheetName string) (location, bool, error) {
	headers, rows, err := l.resolver.Resolve(ctx, sheetName)
	if err != nil {
		return location{}, false, err
	}
	idCol, ok := headers[idColumn]
	if !ok {
		return location{}, false, nil
	}

	match := -1
	for i, row := range rows {
		if idCol < len(row) && cellString(row[idCol]) == id {
			match = i
			break
		}
	}
	if match < 0 {
		return location{}, false, nil
	}

	loc := location{Row: match + 2}

	ids, err := l.gw.Sheets(ctx)
	if err != nil {
		return location{}, false, fmt.Errorf("resolve sheet id of %s: %w", sheetName, err)
	}
	loc.SheetID, loc.HasSheetID = ids[sheetName]
	return loc, true, nil
}
