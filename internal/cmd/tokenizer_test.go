package cmd

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"normalize /a/b", []string{"normalize", "/a/b"}},
		{"join a b c", []string{"join", "a", "b", "c"}},
		{`join "a dir" b`, []string{"join", "a dir", "b"}},
		{`join 'a b' c`, []string{"join", "a b", "c"}},
		{`join a\ b`, []string{"join", "a b"}},
		{`join a "" b`, []string{"join", "a", "", "b"}},
		{"  normalize   a//b  ", []string{"normalize", "a//b"}},
	}

	for _, tt := range tests {
		got, err := Tokenize(tt.line)
		if err != nil {
			t.Errorf("Tokenize(%q) returned error: %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	lines := []string{
		`join "a`,
		`join 'a`,
		`join a\`,
	}

	for _, line := range lines {
		if _, err := Tokenize(line); err == nil {
			t.Errorf("Tokenize(%q) = nil error, want syntax error", line)
		}
	}
}
