package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hh-resume/internal/extract"
	"github.com/spigell/hh-resume/internal/resume"
)

func testRecord() *resume.Record {
	return &resume.Record{
		Name:            "Иванов Дмитрий",
		Address:         "Санкт-Петербург",
		Email:           "dmitry@gmail.com",
		TelegramAddress: "@dmitry",
		About:           []string{"Пишу на Go <и не только>"},
		Skills:          []string{"Языки: Python, Go"},
		WorkExperience: []extract.Job{
			{Company: "Acme LLC", Role: "Backend Developer", Period: "2019-2021", Bullets: []string{"Построил API"}},
		},
		Education:   []extract.Education{{Institution: "ТулГУ", Period: "2012 - 2016", Degree: "Бакалавр"}},
		CoverLetter: []string{"Здравствуйте!", "С уважением"},
	}
}

func TestNew_EmbeddedTemplates(t *testing.T) {
	r, err := New("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"compact", "resume"}, r.Names())
	assert.True(t, r.Has(""))
	assert.True(t, r.Has("compact.html"))
	assert.False(t, r.Has("missing"))
	assert.Empty(t, r.Dir())
}

func TestRender_DefaultTemplate(t *testing.T) {
	r, err := New("", nil)
	require.NoError(t, err)

	html, err := r.Render(testRecord(), "")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Иванов Дмитрий</h1>")
	assert.Contains(t, html, "Acme LLC")
	assert.Contains(t, html, "<li>Построил API</li>")
	assert.Contains(t, html, "ТулГУ")
	assert.Contains(t, html, "Пишу на Go &lt;и не только&gt;")
	assert.NotContains(t, html, "Здравствуйте!")
}

func TestRender_OmitsAbsentSections(t *testing.T) {
	r, err := New("", nil)
	require.NoError(t, err)

	html, err := r.Render(&resume.Record{Name: "Аноним"}, DefaultTemplate)
	require.NoError(t, err)

	assert.NotContains(t, html, "Опыт работы")
	assert.NotContains(t, html, "Образование")
}

func TestRender_Compact(t *testing.T) {
	r, err := New("", nil)
	require.NoError(t, err)

	html, err := r.Render(testRecord(), "compact")
	require.NoError(t, err)

	assert.Contains(t, html, "1. Acme LLC")
	assert.Contains(t, html, "Здравствуйте!\n\nС уважением")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New("", nil)
	require.NoError(t, err)

	_, err = r.Render(testRecord(), "fancy")
	require.Error(t, err)

	var tmplErr *TemplateError
	require.True(t, errors.As(err, &tmplErr))
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Contains(t, err.Error(), "compact, resume")
}

func TestNew_DirectoryOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.html"), []byte("<p>{{.Email}}</p>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "letter.html"), []byte("{{coverLetter .}}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o600))

	r, err := New(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"compact", "letter", "resume"}, r.Names())
	assert.Equal(t, dir, r.Dir())

	html, err := r.Render(testRecord(), "resume")
	require.NoError(t, err)
	assert.Equal(t, "<p>dmitry@gmail.com</p>", html)

	letter, err := r.Render(testRecord(), "letter")
	require.NoError(t, err)
	assert.Equal(t, "Здравствуйте!\n\nС уважением", letter)
}

func TestNew_InvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.html"), []byte("{{.Name"), 0o600))

	_, err := New(dir, nil)
	require.Error(t, err)

	var tmplErr *TemplateError
	assert.True(t, errors.As(err, &tmplErr))
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)

	var renderErr *RenderError
	assert.True(t, errors.As(err, &renderErr))
}

func TestTemplateError(t *testing.T) {
	err := &TemplateError{Message: "bad", Cause: errors.New("boom")}
	assert.Equal(t, "template error: bad: boom", err.Error())
	assert.Equal(t, "template error: bad", (&TemplateError{Message: "bad"}).Error())
}
