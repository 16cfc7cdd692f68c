// Package store treats a header-described sheet as a schema-on-read
// tabular store and exposes type-parameterized CRUD over it.
//
// Nothing is cached between operations: the header map, row positions
// and sheet metadata are re-derived from the remote store on every
// call, and the store itself holds no mutable state, so one value can
// be shared freely across concurrent callers. The multi-call sequences
// behind Update and Delete are not atomic as a unit; see Store for the
// resulting race characteristics.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/finvault/sheetdb/internal/logging"
	"github.com/google/uuid"
)

// Definition declares how entity type T maps onto a sheet: the default
// sheet name, the codec profile, header aliases feeding the schema
// resolver, the identifier accessor, and the field descriptor table.
type Definition[T any] struct {
	// Sheet is the default sheet (tab) name backing this entity type.
	Sheet string

	// Profile selects the codec convention for booleans and lists.
	Profile Profile

	// Aliases maps header text (case-insensitive) to canonical field
	// names; headers absent from it pass through unchanged.
	Aliases map[string]string

	// ID accesses the entity's identifier field. The Fields table must
	// also declare the identifier under the "Id" column name so it is
	// written and read like any other column.
	ID func(*T) *string

	// Fields is the descriptor table driving both codec directions.
	Fields []FieldSpec[T]
}

// Store orchestrates CRUD over one entity type. It offers no
// transactional guarantees beyond the remote store's per-call
// atomicity: a structural delete racing another operation's
// locate-then-mutate sequence can shift that operation's row out from
// under it. This mirrors the remote store's own semantics and is not
// papered over here; WithSheetLocking serializes this process's own
// mutations per sheet as an opt-in, which narrows but cannot close the
// window against other writers of the same spreadsheet.
type Store[T any] struct {
	gw       Gateway
	def      Definition[T]
	resolver *SchemaResolver
	mapper   *Mapper[T]
	loc      *locator
	newID    func() string
	locks    *sheetLocks
}

// Option configures a Store.
type Option func(*options)

type options struct {
	lockSheets bool
	newID      func() string
}

// WithSheetLocking serializes this store's mutations per sheet name.
// This is an enhancement over the default behavior and changes
// observable concurrent semantics: mutations from this process no
// longer interleave, while writers outside the process still do.
func WithSheetLocking() Option {
	return func(o *options) { o.lockSheets = true }
}

// WithIDGenerator replaces the identifier generator. Generated ids must
// be collision-resistant; uniqueness is never validated downstream.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

// New builds a Store for def. Panics if the definition lacks an
// identifier accessor; that is a programming error, not a runtime
// condition.
func New[T any](gw Gateway, def Definition[T], opts ...Option) *Store[T] {
	if def.ID == nil {
		panic("store: definition has no identifier accessor")
	}

	o := options{newID: func() string { return uuid.New().String() }}
	for _, opt := range opts {
		opt(&o)
	}

	resolver := NewSchemaResolver(gw, def.Aliases)
	s := &Store[T]{
		gw:       gw,
		def:      def,
		resolver: resolver,
		mapper:   NewMapper(def.Fields, def.Profile),
		loc:      &locator{gw: gw, resolver: resolver},
		newID:    o.newID,
	}
	if o.lockSheets {
		s.locks = &sheetLocks{}
	}
	return s
}

// GetAll decodes every data row of the sheet, in sheet order. An empty
// sheet yields an empty slice. Malformed cells degrade only their own
// field; a failed remote read is returned unrecovered.
func (s *Store[T]) GetAll(ctx context.Context, sheetName string) ([]T, error) {
	ctx = logging.WithOperationID(ctx)

	headers, rows, err := s.resolver.Resolve(ctx, sheetName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheetName, err)
	}

	entities := make([]T, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, s.mapper.Decode(ctx, row, headers))
	}
	return entities, nil
}

// Add appends the entity as a new row and returns it with a freshly
// generated identifier. Any caller-supplied id is overwritten; creation
// never trusts external ids. No duplicate checking is performed and
// concurrent Adds are not ordered relative to each other.
func (s *Store[T]) Add(ctx context.Context, entity T, sheetName string) (T, error) {
	ctx = logging.WithOperationID(ctx)
	if s.locks != nil {
		defer s.locks.lock(sheetName)()
	}

	*s.def.ID(&entity) = s.newID()

	headers, _, err := s.resolver.Resolve(ctx, sheetName)
	if err != nil {
		return entity, fmt.Errorf("add to %s: %w", sheetName, err)
	}

	row := s.mapper.Encode(&entity, headers)
	if err := s.gw.Append(ctx, sheetRange(sheetName), [][]interface{}{row}); err != nil {
		return entity, fmt.Errorf("add to %s: %w", sheetName, err)
	}

	logging.FromContext(ctx).Info("row appended",
		"sheet", sheetName, "id", *s.def.ID(&entity))
	return entity, nil
}

// Update locates the entity's current row by id and overwrites exactly
// that row's cell range. Returns false without mutating when the id is
// not found. There is no optimistic-concurrency token: last writer
// wins, and the window between locate and write is a known race.
func (s *Store[T]) Update(ctx context.Context, entity T, sheetName string) (bool, error) {
	ctx = logging.WithOperationID(ctx)
	if s.locks != nil {
		defer s.locks.lock(sheetName)()
	}

	id := *s.def.ID(&entity)
	loc, found, err := s.loc.locate(ctx, id, sheetName)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", sheetName, err)
	}
	if !found {
		return false, nil
	}

	headers, _, err := s.resolver.Resolve(ctx, sheetName)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", sheetName, err)
	}

	row := s.mapper.Encode(&entity, headers)
	if err := s.gw.Update(ctx, rowRange(sheetName, loc.Row, len(row)), [][]interface{}{row}); err != nil {
		return false, fmt.Errorf("update %s: %w", sheetName, err)
	}

	logging.FromContext(ctx).Info("row updated",
		"sheet", sheetName, "id", id, "row", loc.Row)
	return true, nil
}

// Delete locates the row by id and structurally removes it, shifting
// every subsequent row up by one. Returns false without mutating when
// the id is not found, or when the sheet's numeric id cannot be
// resolved (structural deletion addresses rows positionally and cannot
// proceed without it; updates have no such dependency).
func (s *Store[T]) Delete(ctx context.Context, id, sheetName string) (bool, error) {
	ctx = logging.WithOperationID(ctx)
	if s.locks != nil {
		defer s.locks.lock(sheetName)()
	}

	loc, found, err := s.loc.locate(ctx, id, sheetName)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", sheetName, err)
	}
	if !found {
		return false, nil
	}
	if !loc.HasSheetID {
		logging.FromContext(ctx).Warn("sheet has no numeric id, cannot delete row",
			"sheet", sheetName, "id", id)
		return false, nil
	}

	if err := s.gw.DeleteRows(ctx, loc.SheetID, int64(loc.Row-1), int64(loc.Row)); err != nil {
		return false, fmt.Errorf("delete from %s: %w", sheetName, err)
	}

	logging.FromContext(ctx).Info("row deleted",
		"sheet", sheetName, "id", id, "row", loc.Row)
	return true, nil
}

// sheetLocks serializes mutations per sheet name.
type sheetLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock acquires the mutex for sheetName and returns its unlock func.
func (s *sheetLocks) lock(sheetName string) func() {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	m, ok := s.locks[sheetName]
	if !ok {
		m = &sync.Mutex{}
		s.locks[sheetName] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
