package store

import (
	"reflect"
	"testing"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes token", input: "Yes", want: true},
		{name: "uppercase yes", input: "YES", want: true},
		{name: "true token", input: "true", want: true},
		{name: "uppercase true", input: "TRUE", want: true},
		{name: "padded token", input: "  yes  ", want: true},
		{name: "no token", input: "No", want: false},
		{name: "false token", input: "false", want: false},
		{name: "empty cell", input: "", want: false},

		// Anything unrecognized is false by contract, not a decode error.
		{name: "unrecognized token", input: "maybe", want: false},
		{name: "numeric one", input: "1", want: false},
		{name: "localized token", input: "ja", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfileYesNo.ParseBool(tt.input); got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
			// Decoding is profile-independent; only encoding differs.
			if got := ProfilePlain.ParseBool(tt.input); got != tt.want {
				t.Errorf("ProfilePlain.ParseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBool(t *testing.T) {
	if got := ProfileYesNo.FormatBool(true); got != "Yes" {
		t.Errorf("ProfileYesNo.FormatBool(true) = %q, want %q", got, "Yes")
	}
	if got := ProfileYesNo.FormatBool(false); got != "No" {
		t.Errorf("ProfileYesNo.FormatBool(false) = %q, want %q", got, "No")
	}
	if got := ProfilePlain.FormatBool(true); got != "true" {
		t.Errorf("ProfilePlain.FormatBool(true) = %q, want %q", got, "true")
	}
	if got := ProfilePlain.FormatBool(false); got != "false" {
		t.Errorf("ProfilePlain.FormatBool(false) = %q, want %q", got, "false")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		input   string
		want    []string
	}{
		{
			name:    "comma separated",
			profile: ProfileYesNo,
			input:   "a, b, c",
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "no spaces",
			profile: ProfileYesNo,
			input:   "a,b,c",
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "empty tokens dropped",
			profile: ProfileYesNo,
			input:   "a, , b",
			want:    []string{"a", "b"},
		},
		{
			name:    "order preserved",
			profile: ProfileYesNo,
			input:   "c, a, b",
			want:    []string{"c", "a", "b"},
		},
		{
			name:    "empty cell",
			profile: ProfileYesNo,
			input:   "",
			want:    []string{},
		},
		{
			name:    "semicolon profile",
			profile: ProfilePlain,
			input:   "x; y ;z",
			want:    []string{"x", "y", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.SplitList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestListRoundTrip(t *testing.T) {
	for _, profile := range []Profile{ProfileYesNo, ProfilePlain} {
		in := []string{"a", "b", "c"}
		out := profile.SplitList(profile.JoinList(in))
		if !reflect.DeepEqual(out, in) {
			t.Errorf("round trip %v = %v", in, out)
		}

		// Empty tokens do not survive the trip.
		lossy := profile.SplitList(profile.JoinList([]string{"a", "", "b"}))
		if !reflect.DeepEqual(lossy, []string{"a", "b"}) {
			t.Errorf("round trip with empty token = %v, want [a b]", lossy)
		}
	}
}
