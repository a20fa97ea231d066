package css_test

import (
	"testing"

	"cssb/css"
)

func TestClassName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chapter Title", "chapter-title"},
		{"  já! öü  ", "ja-ou"},
		{"3rd column", "c-3rd-column"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := css.ClassName(tc.in); got != tc.want {
			t.Errorf("ClassName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIDName(t *testing.T) {
	if got := css.IDName("42nd Street"); got != "i-42nd-street" {
		t.Errorf("IDName() = %q", got)
	}
	if got := css.IDName("Main Nav"); got != "main-nav" {
		t.Errorf("IDName() = %q", got)
	}
}
