package pdf

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single print including browser start.
const DefaultTimeout = 60 * time.Second

// Candidates are executable names probed on PATH when no browser is configured
// or the configured one is missing.
var Candidates = []string{"chrome", "google-chrome", "chromium", "chromium-browser", "msedge"}

// windowsPaths are default install locations probed after Candidates on Windows.
var windowsPaths = []string{
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files\Microsoft\Edge\Application\msedge.exe`,
	`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
	`C:\Program Files\Chromium\Application\chrome.exe`,
}

// A4 in inches, with 0.4in margins on every side.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	margin      = 0.4
)

// Printer prints HTML to PDF. It holds no browser between calls and is safe for
// concurrent use.
type Printer struct {
	browser  string
	timeout  time.Duration
	logger   *zap.Logger
	lookPath func(string) (string, error)
}

// Option customizes a Printer.
type Option func(*Printer)

// WithBrowser sets a browser executable tried before Candidates.
func WithBrowser(path string) Option {
	return func(p *Printer) {
		p.browser = strings.TrimSpace(path)
	}
}

// WithTimeout bounds each print. Non-positive values keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Printer) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Printer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPrinter creates a printer.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Browser resolves the executable used for printing.
func (p *Printer) Browser() (string, error) {
	candidates := make([]string, 0, len(Candidates)+len(windowsPaths)+1)
	if p.browser != "" {
		candidates = append(candidates, p.browser)
	}
	candidates = append(candidates, Candidates...)
	if runtime.GOOS == "windows" {
		candidates = append(candidates, windowsPaths...)
	}

	for _, name := range candidates {
		path, err := p.lookPath(name)
		if err != nil {
			if name == p.browser {
				p.logger.Warn("configured browser not found, probing defaults", zap.String("browser", name), zap.Error(err))
			}
			continue
		}
		return path, nil
	}

	return "", ErrRendererUnavailable
}

// Print renders the HTML in a headless browser and returns the PDF bytes.
// Relative resources resolve against baseURL, which may be a directory path or
// a URL.
func (p *Printer) Print(ctx context.Context, html, baseURL string) ([]byte, error) {
	browser, err := p.Browser()
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "hh-resume-*.html")
	if err != nil {
		return nil, &PrintError{Message: "creating temporary document", Cause: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(InjectBase(html, baseURL)); err != nil {
		tmp.Close()
		return nil, &PrintError{Message: "writing temporary document", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &PrintError{Message: "writing temporary document", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(browser),
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("allow-file-access-from-files", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	start := time.Now()
	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(fileURL(tmp.Name())),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: fmt.Sprintf("printing with %s", browser), Cause: err}
	}

	pages, err := Validate(buf)
	if err != nil {
		return nil, err
	}

	p.logger.Info("pdf printed",
		zap.String("browser", browser),
		zap.Int("pages", pages),
		zap.Int("bytes", len(buf)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return buf, nil
}

// Validate reads the document back and returns its page count.
func Validate(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrInvalidPDF
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if ctx.PageCount == 0 {
		return 0, fmt.Errorf("%w: document has no pages", ErrInvalidPDF)
	}

	return ctx.PageCount, nil
}

var (
	headOpen = regexp.MustCompile(`(?i)<head(?:\s[^>]*)?>`)
	baseTag  = regexp.MustCompile(`(?i)<base[\s>]`)
)

// InjectBase adds a <base href> so relative links in the document resolve
// against baseURL. Documents that already declare a base are left untouched.
func InjectBase(html, baseURL string) string {
	href := BaseHref(baseURL)
	if href == "" || baseTag.MatchString(html) {
		return html
	}

	tag := fmt.Sprintf(`<base href="%s">`, href)
	if loc := headOpen.FindStringIndex(html); loc != nil {
		return html[:loc[1]] + tag + html[loc[1]:]
	}
	return tag + html
}

// BaseHref converts a directory path into a file URL ending in a slash. Values
// that already carry a scheme are returned unchanged.
func BaseHref(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return ""
	}
	if u, err := url.Parse(baseURL); err == nil && len(u.Scheme) > 1 {
		return baseURL
	}

	abs, err := filepath.Abs(baseURL)
	if err != nil {
		abs = baseURL
	}
	href := fileURL(abs)
	if !strings.HasSuffix(href, "/") {
		href += "/"
	}
	return href
}

func fileURL(path string) string {
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return (&url.URL{Scheme: "file", Path: path}).String()
}
