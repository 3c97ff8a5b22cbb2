package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the file name that reads from standard input.
const Stdin = "-"

// ErrEmptyText is returned when a source holds no résumé text.
var ErrEmptyText = errors.New("resume text is empty")

// Source describes where résumé text comes from.
type Source struct {
	// Name is used in error messages to give more context about the input.
	Name string
	// Value is inline text provided via a flag or request body.
	Value string
	// File points to a file with the text. "-" reads Reader (standard input
	// when Reader is nil). When set it takes precedence over Value.
	File string
	// Reader overrides standard input for File "-".
	Reader io.Reader
}

// Load returns the text from the source. Unlike secrets the text is returned
// as is; only whitespace-only content is rejected with ErrEmptyText.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "resume text"
	}

	file := strings.TrimSpace(src.File)
	switch file {
	case "":
	case Stdin:
		reader := src.Reader
		if reader == nil {
			reader = os.Stdin
		}
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("reading %s from stdin: %w", name, err)
		}
		src.Value = string(data)
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
	}

	if strings.TrimSpace(src.Value) == "" {
		if file != "" {
			return "", fmt.Errorf("%s from %q: %w", name, file, ErrEmptyText)
		}
		return "", fmt.Errorf("%s: %w", name, ErrEmptyText)
	}

	return src.Value, nil
}

// Describe names the source for logs.
func Describe(src Source) string {
	switch file := strings.TrimSpace(src.File); file {
	case "":
		return "inline"
	case Stdin:
		return "stdin"
	default:
		return file
	}
}
