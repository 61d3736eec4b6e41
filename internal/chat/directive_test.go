package chat

import (
	"reflect"
	"testing"
)

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Directive
	}{
		{
			name: "single tag",
			text: "Great choice! [ORDER: b01, 2]",
			want: []Directive{{ItemID: "b01", Quantity: 2}},
		},
		{
			name: "multiple tags",
			text: "Added both. [ORDER: b01, 1] [ORDER: p03, 3]",
			want: []Directive{{ItemID: "b01", Quantity: 1}, {ItemID: "p03", Quantity: 3}},
		},
		{
			name: "extra whitespace",
			text: "[ORDER:   t02 ,  4]",
			want: []Directive{{ItemID: "t02", Quantity: 4}},
		},
		{
			name: "no tags",
			text: "Would you like anything else?",
			want: nil,
		},
		{
			name: "non-numeric quantity ignored",
			text: "[ORDER: b01, two]",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDirectives(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseDirectives(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestStripDirectives(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Great choice! [ORDER: b01, 2]", "Great choice!"},
		{"[ORDER: b01, 1] Added. [ORDER: p03, 3]", "Added."},
		{"No tags here.", "No tags here."},
		{"[ORDER: b01, two] stays parse-proof but still hidden", "stays parse-proof but still hidden"},
	}

	for _, tc := range tests {
		if got := StripDirectives(tc.text); got != tc.want {
			t.Errorf("StripDirectives(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
