package catalog

import (
	"time"

	"github.com/finvault/sheetdb/internal/store"
)

// Task is one row of the maintenance task sheet.
type Task struct {
	ID       string
	Title    string
	Owner    string
	Status   string
	Priority int
	Estimate float64
	Labels   []string
	Done     bool
	DueDate  time.Time
}

// TaskDefinition maps Task onto the "Tasks" sheet. This sheet was
// created by the system itself, so its headers already equal the field
// names and no aliases are needed; it uses the plain codec profile.
func TaskDefinition() store.Definition[Task] {
	return store.Definition[Task]{
		Sheet:   "Tasks",
		Profile: store.ProfilePlain,
		ID:      func(t *Task) *string { return &t.ID },
		Fields: []store.FieldSpec[Task]{
			store.Text("Id", func(t *Task) *string { return &t.ID }),
			store.Text("Title", func(t *Task) *string { return &t.Title }),
			store.Text("Owner", func(t *Task) *string { return &t.Owner }),
			store.Text("Status", func(t *Task) *string { return &t.Status }),
			store.Int("Priority", func(t *Task) *int { return &t.Priority }),
			store.Float("Estimate", func(t *Task) *float64 { return &t.Estimate }),
			store.List("Labels", func(t *Task) *[]string { return &t.Labels }),
			store.Bool("Done", func(t *Task) *bool { return &t.Done }),
			store.Date("DueDate", func(t *Task) *time.Time { return &t.DueDate }),
		},
	}
}

func init() {
	store.Register(store.DefineSheet("tasks", "Tasks", TaskDefinition()))
}
