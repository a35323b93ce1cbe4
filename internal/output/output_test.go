package output

import (
	"strings"
	"testing"
)

func TestWrite_JSONSortedKeys(t *testing.T) {
	v := map[string]any{
		"title":  "<no title>",
		"id":     "abc",
		"nested": map[string]any{"z": 1, "a": true},
	}

	var b strings.Builder
	if err := Write(&b, FormatJSON, v); err != nil {
		t.Fatal(err)
	}

	want := `{
  "id": "abc",
  "nested": {
    "a": true,
    "z": 1
  },
  "title": "<no title>"
}
`
	if b.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", b.String(), want)
	}
}

func TestWrite_YAML(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, FormatYAML, map[string]any{"b": 2, "a": "x"}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "a: x\nb: 2\n" {
		t.Errorf("Write() = %q", b.String())
	}
}

func TestWrite_TextUnsupported(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, FormatText, map[string]any{}); err == nil {
		t.Error("text format should be rejected")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		fallback Format
		want     Format
		wantErr  bool
	}{
		{"", FormatJSON, FormatJSON, false},
		{"", FormatText, FormatText, false},
		{"YAML", FormatJSON, FormatYAML, false},
		{"json", FormatText, FormatJSON, false},
		{"xml", FormatJSON, "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input, tt.fallback)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
