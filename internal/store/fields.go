package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType is the semantic type of a mapped field. The set is closed:
// every field is one of these, and each has exactly one codec.
type FieldType int

const (
	FieldText FieldType = iota
	FieldList
	FieldBool
	FieldInt
	FieldFloat
	FieldDate
)

// dateEncodeLayout is the rendered form of date fields.
const dateEncodeLayout = "2006-01-02"

// dateLayouts are tried in order when decoding a date cell. Sheets
// render dates per the cell's display format, so several common forms
// must be accepted.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
}

// FieldSpec declares one mapped field of entity type T: the canonical
// column name, the semantic type, and accessors used by both the encode
// and decode direction. Build specs with the Text, List, Bool, Int,
// Float and Date constructors; the mapping is declared once per entity
// type and drives both directions.
type FieldSpec[T any] struct {
	Name string
	Type FieldType

	encode func(e *T, p Profile) string
	decode func(e *T, cell string, p Profile) error
}

// Text declares a plain text field. Decoding never fails.
func Text[T any](name string, access func(*T) *string) FieldSpec[T] {
	return FieldSpec[T]{
		Name: name,
		Type: FieldText,
		encode: func(e *T, _ Profile) string {
			return *access(e)
		},
		decode: func(e *T, cell string, _ Profile) error {
			*access(e) = cell
			return nil
		},
	}
}

// List declares a delimiter-encoded list-of-text field. Decoding never
// fails; empty tokens are dropped and order is preserved.
func List[T any](name string, access func(*T) *[]string) FieldSpec[T] {
	return FieldSpec[T]{
		Name: name,
		Type: FieldList,
		encode: func(e *T, p Profile) string {
			return p.JoinList(*access(e))
		},
		decode: func(e *T, cell string, p Profile) error {
			*access(e) = p.SplitList(cell)
			return nil
		},
	}
}

// Bool declares a boolean field. Decoding never fails: anything other
// than a recognized truthy token is false.
func Bool[T any](name string, access func(*T) *bool) FieldSpec[T] {
	return FieldSpec[T]{
		Name: name,
		Type: FieldBool,
		encode: func(e *T, p Profile) string {
			return p.FormatBool(*access(e))
		},
		decode: func(e *T, cell string, p Profile) error {
			*access(e) = p.ParseBool(cell)
			return nil
		},
	}
}

// Int declares an integer field.
func Int[T any](name string, access func(*T) *int) FieldSpec[T] {
	return FieldSpec[T]{
		Name: name,
		Type: FieldInt,
		encode: func(e *T, _ Profile) string {
			return strconv.Itoa(*access(e))
		},
		decode: func(e *T, cell string, _ Profile) error {
			n, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return fmt.Errorf("parse integer: %w", err)
			}
			*access(e) = n
			return nil
		},
	}
}

// Float declares a floating-point field.
func Float[T any](name string, access func(*T) *float64) FieldSpec[T] {
	return FieldSpec[T]{
		Name: name,
		Type: FieldFloat,
		encode: func(e *T, _ Profile) string {
			return strconv.FormatFloat(*access(e), 'f', -1, 64)
		},
		decode: func(e *T, cell string, _ Profile) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return fmt.Errorf("parse number: %w", err)
			}
			*access(e) = f
			return nil
		},
	}
}

// Date declares a date field. The zero time encodes as an empty cell.
func Date[T any](name string, access func(*T) *time.Time) FieldSpec[T] {
	return FieldSpec[T]{
		Name: name,
		Type: FieldDate,
		encode: func(e *T, _ Profile) string {
			t := *access(e)
			if t.IsZero() {
				return ""
			}
			return t.Format(dateEncodeLayout)
		},
		decode: func(e *T, cell string, _ Profile) error {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				return nil
			}
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, cell); err == nil {
					*access(e) = t
					return nil
				}
			}
			return fmt.Errorf("unrecognized date %q", cell)
		},
	}
}

// cellString converts a loosely-typed cell value to its string form.
// The provider returns text, numbers and booleans depending on the
// cell's display formatting.
func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
