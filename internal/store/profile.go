package store

import "strings"

// Profile is a codec convention for a sheet: how booleans are rendered
// and which delimiter packs list values into a single cell. Two
// incompatible conventions exist in the wild, so each sheet definition
// picks one; they are deliberately not unified.
type Profile struct {
	// ListDelimiter joins list values into one cell.
	ListDelimiter string

	// BoolTrue and BoolFalse are the rendered boolean tokens.
	BoolTrue  string
	BoolFalse string
}

// ProfileYesNo renders booleans as "Yes"/"No" and joins lists with ", ".
var ProfileYesNo = Profile{
	ListDelimiter: ", ",
	BoolTrue:      "Yes",
	BoolFalse:     "No",
}

// ProfilePlain renders booleans in their default textual form and joins
// lists with ";".
var ProfilePlain = Profile{
	ListDelimiter: ";",
	BoolTrue:      "true",
	BoolFalse:     "false",
}

// FormatBool renders b using the profile's tokens.
func (p Profile) FormatBool(b bool) string {
	if b {
		return p.BoolTrue
	}
	return p.BoolFalse
}

// ParseBool decodes a cell as a boolean. It is true iff the trimmed
// value case-insensitively equals a recognized truthy token; everything
// else, including unparseable values, is false. There is no explicit
// falsy-token set.
func (p Profile) ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true":
		return true
	}
	return false
}

// JoinList packs values into a single cell using the profile delimiter.
func (p Profile) JoinList(values []string) string {
	return strings.Join(values, p.ListDelimiter)
}

// SplitList unpacks a delimiter-encoded cell: split, trim each token,
// drop empty tokens, preserve order. An empty cell yields no values.
func (p Profile) SplitList(cell string) []string {
	parts := strings.Split(cell, strings.TrimSpace(p.ListDelimiter))
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}
