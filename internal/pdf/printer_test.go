package pdf

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, candidate := range installed {
			if candidate == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestBrowser_ConfiguredFirst(t *testing.T) {
	p := NewPrinter(WithBrowser(" msedge "))
	p.lookPath = fakeLookPath("chromium", "msedge")

	path, err := p.Browser()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/msedge", path)
}

func TestBrowser_FallsBackToCandidates(t *testing.T) {
	p := NewPrinter(WithBrowser("/opt/missing/chrome"))
	p.lookPath = fakeLookPath("chromium-browser", "msedge")

	path, err := p.Browser()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/chromium-browser", path)
}

func TestBrowser_Unavailable(t *testing.T) {
	p := NewPrinter()
	p.lookPath = fakeLookPath()

	_, err := p.Browser()
	assert.ErrorIs(t, err, ErrRendererUnavailable)
}

func TestPrint_Unavailable(t *testing.T) {
	p := NewPrinter(WithTimeout(time.Second))
	p.lookPath = fakeLookPath()

	_, err := p.Print(context.Background(), "<html></html>", "")
	assert.ErrorIs(t, err, ErrRendererUnavailable)
}

func TestNewPrinter_Timeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewPrinter(WithTimeout(0)).timeout)
	assert.Equal(t, 5*time.Second, NewPrinter(WithTimeout(5*time.Second)).timeout)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "html", data: []byte("<html><body>not a pdf</body></html>")},
		{name: "truncated header", data: []byte("%PDF-1.7\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.data)
			assert.ErrorIs(t, err, ErrInvalidPDF)
		})
	}
}

func TestInjectBase(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		baseURL string
		expect  string
	}{
		{
			name:    "after head",
			html:    `<html><head><title>x</title></head></html>`,
			baseURL: "https://example.com/assets/",
			expect:  `<html><head><base href="https://example.com/assets/"><title>x</title></head></html>`,
		},
		{
			name:    "head with attributes",
			html:    `<HEAD lang="ru"></HEAD>`,
			baseURL: "https://example.com/",
			expect:  `<HEAD lang="ru"><base href="https://example.com/"></HEAD>`,
		},
		{
			name:    "no head",
			html:    `<p>x</p>`,
			baseURL: "https://example.com/",
			expect:  `<base href="https://example.com/"><p>x</p>`,
		},
		{
			name:    "existing base kept",
			html:    `<head><base href="/"></head>`,
			baseURL: "https://example.com/",
			expect:  `<head><base href="/"></head>`,
		},
		{
			name:    "header element is not head",
			html:    `<header>x</header>`,
			baseURL: "https://example.com/",
			expect:  `<base href="https://example.com/"><header>x</header>`,
		},
		{
			name:    "empty base",
			html:    `<head></head>`,
			baseURL: "",
			expect:  `<head></head>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, InjectBase(tt.html, tt.baseURL))
		})
	}
}

func TestBaseHref_Directory(t *testing.T) {
	href := BaseHref("/srv/templates")
	assert.Equal(t, "file:///srv/templates/", href)

	relative := BaseHref("templates")
	assert.True(t, strings.HasPrefix(relative, "file:///"))
	assert.True(t, strings.HasSuffix(relative, "/templates/"))
}

func TestPrintError(t *testing.T) {
	cause := errors.New("exec: not started")
	err := &PrintError{Message: "printing with chromium", Cause: cause}

	assert.Equal(t, "print error: printing with chromium: exec: not started", err.Error())
	assert.ErrorIs(t, err, cause)
}
