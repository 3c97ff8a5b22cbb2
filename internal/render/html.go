package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/resume"
)

// DefaultTemplate is used when no template name is given.
const DefaultTemplate = "resume"

const templateExt = ".html"

//go:embed templates/*.html
var embedded embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"coverLetter": func(r *resume.Record) string {
		return resume.CoverLetter(r)
	},
	"add": func(a, b int) int {
		return a + b
	},
}

// Renderer executes named HTML templates against a record. Built-in templates
// are embedded; files in the templates directory replace or extend them.
// A Renderer is read-only after New and safe for concurrent use.
type Renderer struct {
	dir       string
	templates map[string]*template.Template
	logger    *zap.Logger
}

// New loads the embedded templates and then every *.html file in dir. An empty
// dir uses the embedded set only.
func New(dir string, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Renderer{
		dir:       strings.TrimSpace(dir),
		templates: make(map[string]*template.Template),
		logger:    logger,
	}

	if err := r.load(embedded, "templates", "embedded"); err != nil {
		return nil, err
	}

	if r.dir != "" {
		info, err := os.Stat(r.dir)
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("opening templates directory %q", r.dir), Cause: err}
		}
		if !info.IsDir() {
			return nil, &RenderError{Message: fmt.Sprintf("templates path %q is not a directory", r.dir)}
		}
		if err := r.load(os.DirFS(r.dir), ".", r.dir); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Renderer) load(fsys fs.FS, root, origin string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return &RenderError{Message: fmt.Sprintf("listing templates in %s", origin), Cause: err}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), templateExt) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		data, err := fs.ReadFile(fsys, path.Join(root, entry.Name()))
		if err != nil {
			return &RenderError{Message: fmt.Sprintf("reading template %q", name), Cause: err}
		}

		tmpl, err := template.New(name).Funcs(funcs).Parse(string(data))
		if err != nil {
			return &TemplateError{Message: fmt.Sprintf("parsing template %q from %s", name, origin), Cause: err}
		}

		if _, ok := r.templates[name]; ok {
			r.logger.Debug("template overridden", zap.String("template", name), zap.String("origin", origin))
		}
		r.templates[name] = tmpl
	}

	return nil
}

// Names returns registered template names in sorted order.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the template is registered.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[resolveName(name)]
	return ok
}

// Dir returns the on-disk templates directory, empty when only embedded
// templates are used. Relative resources in documents resolve against it.
func (r *Renderer) Dir() string {
	return r.dir
}

// Render executes the template against the record. An empty name selects
// DefaultTemplate.
func (r *Renderer) Render(record *resume.Record, name string) (string, error) {
	name = resolveName(name)

	tmpl, ok := r.templates[name]
	if !ok {
		return "", &TemplateError{Message: fmt.Sprintf("%q (available: %s)", name, strings.Join(r.Names(), ", ")), Cause: ErrUnknownTemplate}
	}
	if record == nil {
		record = &resume.Record{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, record); err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("executing template %q", name), Cause: err}
	}

	r.logger.Debug("document rendered", zap.String("template", name), zap.Int("bytes", buf.Len()))

	return buf.String(), nil
}

func resolveName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), templateExt)
	if name == "" {
		return DefaultTemplate
	}
	return name
}
