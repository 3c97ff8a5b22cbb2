package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/extract"
	"github.com/spigell/hh-resume/internal/input"
	"github.com/spigell/hh-resume/internal/logger"
	"github.com/spigell/hh-resume/internal/pdf"
	"github.com/spigell/hh-resume/internal/render"
	"github.com/spigell/hh-resume/internal/resume"
	"github.com/spigell/hh-resume/internal/sections"
)

// setup creates the logger and reads the config. Failures are fatal.
func setup() (*zap.Logger, *Config) {
	logger := logger.New(logger.Options{
		JSON:    viper.GetBool("json"),
		Debug:   viper.GetBool("debug"),
		App:     app,
		Version: version,
	})

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		config = &Config{}
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func profileName(config *Config) string {
	// viper lowercases map keys, so profile names are case-insensitive.
	return strings.ToLower(strings.TrimSpace(config.Profile))
}

// newParser builds the parser from the selected profile and the heading,
// classifier rule and cover-letter overrides.
func newParser(config *Config, log *zap.Logger) (*resume.Parser, error) {
	profile, err := resume.SelectProfile(config.Profiles, profileName(config))
	if err != nil {
		return nil, err
	}

	dict := sections.DefaultDictionary()
	if len(config.Headings) > 0 {
		dict, err = dict.WithAliases(config.Headings)
		if err != nil {
			return nil, fmt.Errorf("configuring headings: %w", err)
		}
	}

	opts := []resume.Option{
		resume.WithDictionary(dict),
		resume.WithRules(extract.DefaultRules().Merge(config.Rules).Merge(extract.Rules{KnownCompanies: config.KnownCompanies})),
		resume.WithLogger(log),
	}
	if config.CoverLetter != nil && len(config.CoverLetter.Prefaces) > 0 {
		opts = append(opts, resume.WithPrefaces(config.CoverLetter.Prefaces))
	}
	if config.Education != nil {
		opts = append(opts, resume.WithEducationMode(config.Education.Mode))
	}

	return resume.New(profile, opts...)
}

func renderConfig(config *Config) RenderConfig {
	if config.Render == nil {
		return RenderConfig{Template: render.DefaultTemplate}
	}
	return *config.Render
}

func newRenderer(config *Config, log *zap.Logger) (*render.Renderer, error) {
	return render.New(renderConfig(config).TemplatesDir, log)
}

func newPrinter(config *Config, log *zap.Logger) *pdf.Printer {
	cfg := renderConfig(config)
	return pdf.NewPrinter(
		pdf.WithBrowser(cfg.Browser),
		pdf.WithTimeout(cfg.Timeout),
		pdf.WithLogger(log),
	)
}

// sourceFromArgs maps the optional positional argument and --text flag to a
// text source. No argument and no inline text reads stdin.
func sourceFromArgs(args []string, inline string) input.Source {
	if len(args) > 0 {
		return input.Source{Name: "resume text", File: args[0]}
	}
	if strings.TrimSpace(inline) != "" {
		return input.Source{Name: "resume text", Value: inline}
	}
	return input.Source{Name: "resume text", File: input.Stdin}
}

// loadRecord reads a previously parsed record from a .json file, or parses
// any other source as résumé text.
func loadRecord(src input.Source, parser *resume.Parser) (*resume.Record, error) {
	if strings.EqualFold(filepath.Ext(src.File), ".json") {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("reading record from %q: %w", src.File, err)
		}
		var record resume.Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decoding record from %q: %w", src.File, err)
		}
		return &record, nil
	}

	text, err := input.Load(src)
	if err != nil {
		return nil, err
	}
	return parser.Parse(text), nil
}

// withCommonFields tags the logger with the active profile and template.
func withCommonFields(log *zap.Logger, config *Config, template string) *zap.Logger {
	name := profileName(config)
	if name == "" {
		name = resume.DefaultProfileName
	}
	return logger.WithCommonFields(log, name, template)
}
