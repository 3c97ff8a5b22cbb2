package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	full := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(full, []byte("О себе\nПишу на Go\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	blank := filepath.Join(dir, "blank.txt")
	if err := os.WriteFile(blank, []byte(" \n\t\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name      string
		src       Source
		expect    string
		wantEmpty bool
		wantErr   bool
	}{
		{
			name:   "inline value kept as is",
			src:    Source{Value: "  Навыки\nGo  "},
			expect: "  Навыки\nGo  ",
		},
		{
			name:   "file takes precedence",
			src:    Source{Value: "ignored", File: full},
			expect: "О себе\nПишу на Go\n",
		},
		{
			name:   "stdin",
			src:    Source{File: Stdin, Reader: strings.NewReader("Опыт работы\n")},
			expect: "Опыт работы\n",
		},
		{
			name:      "whitespace only value",
			src:       Source{Value: "   \n"},
			wantEmpty: true,
		},
		{
			name:      "blank file",
			src:       Source{File: blank},
			wantEmpty: true,
		},
		{
			name:    "missing file",
			src:     Source{File: filepath.Join(dir, "missing.txt")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.src)
			switch {
			case tt.wantEmpty:
				if !errors.Is(err, ErrEmptyText) {
					t.Fatalf("expected ErrEmptyText, got %v", err)
				}
			case tt.wantErr:
				if err == nil || errors.Is(err, ErrEmptyText) {
					t.Fatalf("expected read error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.expect {
					t.Fatalf("expected %q, got %q", tt.expect, got)
				}
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := map[string]Source{
		"inline":     {Value: "text"},
		"stdin":      {File: "-"},
		"resume.txt": {File: " resume.txt "},
	}
	for expect, src := range tests {
		if got := Describe(src); got != expect {
			t.Fatalf("expected %q, got %q", expect, got)
		}
	}
}
