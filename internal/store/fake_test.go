package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fakeGateway is an in-memory Gateway with the remote store's
// observable behavior: per-call atomicity, trailing-blank omission on
// reads, and structural deletes that shift subsequent rows up.
type fakeGateway struct {
	mu     sync.Mutex
	grids  map[string][][]interface{} // sheet name -> rows, header included
	ids    map[string]int64           // sheet name -> numeric sheet id
	errs   map[string]error           // method name -> forced failure
	reads  int
	writes int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		grids: make(map[string][][]interface{}),
		ids:   make(map[string]int64),
		errs:  make(map[string]error),
	}
}

func (f *fakeGateway) seed(sheetName string, id int64, rows [][]interface{}) {
	f.grids[sheetName] = rows
	if id >= 0 {
		f.ids[sheetName] = id
	}
}

// parseRange splits an A1 range produced by the store into its sheet
// name and optional 1-based start row (0 when the range is sheet-wide).
func parseRange(rng string) (sheetName string, row int) {
	rest := ""
	if i := strings.LastIndex(rng, "!"); i >= 0 {
		rng, rest = rng[:i], rng[i+1:]
	}
	sheetName = strings.ReplaceAll(strings.Trim(rng, "'"), "''", "'")
	if rest != "" {
		first, _, _ := strings.Cut(rest, ":")
		digits := strings.TrimLeft(first, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		row, _ = strconv.Atoi(digits)
	}
	return sheetName, row
}

func (f *fakeGateway) Read(ctx context.Context, rng string) ([][]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["Read"]; err != nil {
		return nil, err
	}
	f.reads++

	sheetName, _ := parseRange(rng)
	grid := f.grids[sheetName]
	out := make([][]interface{}, 0, len(grid))
	for _, row := range grid {
		// The remote store omits trailing blank cells.
		end := len(row)
		for end > 0 && row[end-1] == "" {
			end--
		}
		out = append(out, append([]interface{}(nil), row[:end]...))
	}
	return out, nil
}

func (f *fakeGateway) Append(ctx context.Context, rng string, rows [][]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["Append"]; err != nil {
		return err
	}
	f.writes++

	sheetName, _ := parseRange(rng)
	for _, row := range rows {
		f.grids[sheetName] = append(f.grids[sheetName], append([]interface{}(nil), row...))
	}
	return nil
}

func (f *fakeGateway) Update(ctx context.Context, rng string, rows [][]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["Update"]; err != nil {
		return err
	}
	f.writes++

	sheetName, start := parseRange(rng)
	grid := f.grids[sheetName]
	for i, row := range rows {
		at := start - 1 + i
		if at < 0 || at >= len(grid) {
			return fmt.Errorf("range %q outside grid", rng)
		}
		grid[at] = append([]interface{}(nil), row...)
	}
	return nil
}

func (f *fakeGateway) DeleteRows(ctx context.Context, sheetID, start, end int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["DeleteRows"]; err != nil {
		return err
	}
	f.writes++

	for sheetName, id := range f.ids {
		if id != sheetID {
			continue
		}
		grid := f.grids[sheetName]
		if start < 0 || end > int64(len(grid)) || start >= end {
			return fmt.Errorf("interval [%d,%d) outside grid", start, end)
		}
		f.grids[sheetName] = append(grid[:start], grid[end:]...)
		return nil
	}
	return fmt.Errorf("no sheet with id %d", sheetID)
}

func (f *fakeGateway) Sheets(ctx context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs["Sheets"]; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(f.ids))
	for sheetName, id := range f.ids {
		out[sheetName] = id
	}
	return out, nil
}

func (f *fakeGateway) rows(sheetName string) [][]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]interface{}(nil), f.grids[sheetName]...)
}

// widget is the entity type used throughout the store tests.
type widget struct {
	ID     string
	Name   string
	Count  int
	Price  float64
	Tags   []string
	Active bool
	Added  time.Time
}

func widgetFields() []FieldSpec[widget] {
	return []FieldSpec[widget]{
		Text("Id", func(w *widget) *string { return &w.ID }),
		Text("Name", func(w *widget) *string { return &w.Name }),
		Int("Count", func(w *widget) *int { return &w.Count }),
		Float("Price", func(w *widget) *float64 { return &w.Price }),
		List("Tags", func(w *widget) *[]string { return &w.Tags }),
		Bool("Active", func(w *widget) *bool { return &w.Active }),
		Date("Added", func(w *widget) *time.Time { return &w.Added }),
	}
}

func widgetDefinition() Definition[widget] {
	return Definition[widget]{
		Sheet:   "Widgets",
		Profile: ProfileYesNo,
		ID:      func(w *widget) *string { return &w.ID },
		Fields:  widgetFields(),
	}
}

// widgetHeader is the header row matching widgetFields in order.
func widgetHeader() []interface{} {
	return []interface{}{"Id", "Name", "Count", "Price", "Tags", "Active", "Added"}
}
