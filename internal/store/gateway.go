package store

import (
	"context"
	"fmt"
	"strings"
)

// Gateway is the remote surface the store consumes from the tabular
// provider. *sheets.Client implements it; tests substitute an in-memory
// fake. All calls are individually atomic on the provider side; nothing
// here composes them into larger transactions.
type Gateway interface {
	// Read returns the cell grid of an A1 range. Rows may be shorter
	// than the header row; trailing blanks are omitted.
	Read(ctx context.Context, rng string) ([][]interface{}, error)

	// Append adds rows after the existing data of the table at rng,
	// interpreting values as if typed by a human.
	Append(ctx context.Context, rng string, rows [][]interface{}) error

	// Update overwrites the rectangular region at rng.
	Update(ctx context.Context, rng string, rows [][]interface{}) error

	// DeleteRows structurally removes the 0-based half-open row interval
	// [start, end) from the sheet with the given numeric id.
	DeleteRows(ctx context.Context, sheetID, start, end int64) error

	// Sheets returns the container's sheet-name to numeric-id mapping.
	Sheets(ctx context.Context) (map[string]int64, error)
}

// sheetRange returns the A1 range addressing a sheet's entire used range.
func sheetRange(sheetName string) string {
	return quoteSheet(sheetName)
}

// rowRange returns the A1 range covering width cells of the given
// 1-based row, starting at column A.
func rowRange(sheetName string, row, width int) string {
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%s!A%d:%s%d", quoteSheet(sheetName), row, columnName(width-1), row)
}

// columnName converts a zero-based column index to A1 letters
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func columnName(idx int) string {
	name := ""
	for idx >= 0 {
		name = string(rune('A'+idx%26)) + name
		idx = idx/26 - 1
	}
	return name
}

// quoteSheet wraps a sheet name in single quotes for A1 notation.
// Quoting is always valid and required for names containing spaces.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
