// Package output writes generated documents to disk.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteError describes a failed write. The previous file content, if any, is
// left intact.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Locked reports whether the target is held by another process or not
// writable, for example a PDF open in a viewer.
func (e *WriteError) Locked() bool {
	return errors.Is(e.Err, fs.ErrPermission) || errors.Is(e.Err, syscall.EBUSY)
}

// WriteFile writes data next to path under a temporary name and renames it
// into place.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Op: "create temporary file", Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &WriteError{Path: path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Op: "close", Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &WriteError{Path: path, Op: "chmod", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Op: "rename", Err: err}
	}

	committed = true
	return nil
}

// Marshal encodes v as indented JSON or YAML.
func Marshal(v any, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported format %q (use %s or %s)", format, FormatJSON, FormatYAML)
	}
}

// DumpToTmpFile writes the encoded value to a new temporary file and returns
// its name.
func DumpToTmpFile(v any, format string) (string, error) {
	data, err := Marshal(v, format)
	if err != nil {
		return "", err
	}

	ext := FormatJSON
	if f := strings.ToLower(strings.TrimSpace(format)); f != "" {
		ext = f
	}

	file, err := os.CreateTemp("", "resume_*."+ext)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Exists reports whether a regular file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WithExt replaces the extension of path unless it already ends with ext,
// compared case-insensitively.
func WithExt(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
