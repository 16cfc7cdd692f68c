package store

import (
	"testing"
	"time"
)

func TestDateDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso", input: "2024-03-09", want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "us slashes", input: "3/9/2024", want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "padded us slashes", input: "03/09/2024", want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "month name", input: "Mar 9, 2024", want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding whitespace", input: " 2024-03-09 ", want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{name: "empty leaves zero", input: "", want: time.Time{}},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "time only", input: "15:04", wantErr: true},
	}

	spec := Date("Added", func(w *widget) *time.Time { return &w.Added })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w widget
			err := spec.decode(&w, tt.input, ProfileYesNo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !w.Added.Equal(tt.want) {
				t.Errorf("decode(%q) = %v, want %v", tt.input, w.Added, tt.want)
			}
		})
	}
}

func TestDateEncode(t *testing.T) {
	spec := Date("Added", func(w *widget) *time.Time { return &w.Added })

	w := widget{Added: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}
	if got := spec.encode(&w, ProfileYesNo); got != "2024-03-09" {
		t.Errorf("encode = %q, want %q", got, "2024-03-09")
	}

	// The zero time is "absent" and renders as an empty cell.
	var zero widget
	if got := spec.encode(&zero, ProfileYesNo); got != "" {
		t.Errorf("encode(zero) = %q, want empty", got)
	}
}

func TestIntDecode(t *testing.T) {
	spec := Int("Count", func(w *widget) *int { return &w.Count })

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "42", want: 42},
		{name: "negative", input: "-7", want: -7},
		{name: "padded", input: " 42 ", want: 42},
		{name: "decimal rejected", input: "4.2", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "words rejected", input: "forty-two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w widget
			err := spec.decode(&w, tt.input, ProfileYesNo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && w.Count != tt.want {
				t.Errorf("decode(%q) = %d, want %d", tt.input, w.Count, tt.want)
			}
		})
	}
}

func TestFloatDecode(t *testing.T) {
	spec := Float("Price", func(w *widget) *float64 { return &w.Price })

	var w widget
	if err := spec.decode(&w, "19.99", ProfileYesNo); err != nil || w.Price != 19.99 {
		t.Errorf("decode(19.99) = %v, %v", w.Price, err)
	}
	if err := spec.decode(&w, "not a price", ProfileYesNo); err == nil {
		t.Error("decode of garbage float expected error")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{name: "string", input: "hello", want: "hello"},
		{name: "nil", input: nil, want: ""},
		{name: "bool true", input: true, want: "TRUE"},
		{name: "bool false", input: false, want: "FALSE"},
		{name: "integer-valued float", input: float64(12), want: "12"},
		{name: "fractional float", input: 12.5, want: "12.5"},
		{name: "large float not scientific", input: float64(1000000), want: "1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellString(tt.input); got != tt.want {
				t.Errorf("cellString(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		if got := columnName(tt.idx); got != tt.want {
			t.Errorf("columnName(%d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestRowRange(t *testing.T) {
	if got := rowRange("Widgets", 5, 7); got != "'Widgets'!A5:G5" {
		t.Errorf("rowRange = %q, want %q", got, "'Widgets'!A5:G5")
	}
	if got := rowRange("Ops Inventory", 2, 1); got != "'Ops Inventory'!A2:A2" {
		t.Errorf("rowRange = %q, want %q", got, "'Ops Inventory'!A2:A2")
	}
	// Width never collapses below one cell.
	if got := rowRange("Widgets", 3, 0); got != "'Widgets'!A3:A3" {
		t.Errorf("rowRange = %q, want %q", got, "'Widgets'!A3:A3")
	}
}
