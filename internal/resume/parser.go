package resume

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/extract"
	"github.com/spigell/hh-resume/internal/sections"
)

// Education modes.
const (
	EducationFixed  = "fixed"
	EducationParsed = "parsed"
)

// DefaultPrefaces are filler openings dropped from the first cover-letter
// paragraph.
var DefaultPrefaces = []string{
	"Вот короткое сопроводительное письмо",
	"Вот сопроводительное письмо",
	"Вот вариант сопроводительного письма",
	"Ниже приведено сопроводительное письмо",
	"Ниже — сопроводительное письмо",
}

// Parser turns raw résumé text into a Record. It is immutable after New and
// safe for concurrent use.
type Parser struct {
	profile   Profile
	dict      *sections.Dictionary
	rules     extract.Rules
	prefaces  []string
	education string
	logger    *zap.Logger

	splitter  *sections.Splitter
	segmenter *extract.Segmenter
}

// Option customizes a Parser.
type Option func(*Parser)

// WithDictionary sets the heading dictionary.
func WithDictionary(dict *sections.Dictionary) Option {
	return func(p *Parser) {
		if dict != nil {
			p.dict = dict
		}
	}
}

// WithRules sets the work-experience classifier rules.
func WithRules(rules extract.Rules) Option {
	return func(p *Parser) {
		p.rules = rules
	}
}

// WithPrefaces replaces the cover-letter filler phrases.
func WithPrefaces(prefaces []string) Option {
	return func(p *Parser) {
		p.prefaces = append([]string(nil), prefaces...)
	}
}

// WithEducationMode selects between the fixed profile entry and parsing the
// education section.
func WithEducationMode(mode string) Option {
	return func(p *Parser) {
		p.education = strings.ToLower(strings.TrimSpace(mode))
	}
}

// WithLogger sets the logger. Parsing logs at debug level only.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser for the profile.
func New(profile Profile, opts ...Option) (*Parser, error) {
	p := &Parser{
		profile:   profile,
		dict:      sections.DefaultDictionary(),
		rules:     extract.DefaultRules(),
		prefaces:  append([]string(nil), DefaultPrefaces...),
		education: EducationFixed,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	switch p.education {
	case "":
		p.education = EducationFixed
	case EducationFixed, EducationParsed:
	default:
		return nil, fmt.Errorf("unknown education mode %q", p.education)
	}

	detector, err := extract.NewDetector(p.rules, p.dict)
	if err != nil {
		return nil, fmt.Errorf("building detector: %w", err)
	}

	p.splitter = sections.NewSplitter(p.dict, p.logger)
	p.segmenter = extract.NewSegmenter(detector, extract.WithLogger(p.logger))

	return p, nil
}

// Profile returns the profile identity fields come from.
func (p *Parser) Profile() Profile {
	return p.profile
}

// Shapes returns work-experience layouts in priority order.
func (p *Parser) Shapes() []string {
	return p.segmenter.Shapes()
}

// Parse builds the record. It never fails: unrecognized input yields a record
// with identity fields only.
func (p *Parser) Parse(text string) *Record {
	m := p.splitter.Split(sections.Normalize(text))
	record := p.profile.record()

	record.About = pick(p.dict, m, sections.KindAbout, extract.Paragraphs)
	record.Skills = pick(p.dict, m, sections.KindSkills, extract.Skills)
	record.WorkExperience = pick(p.dict, m, sections.KindWorkExperience, p.segmenter.Segment)
	record.Education = p.educationEntries(m)
	record.CoverLetter = p.stripPreface(pick(p.dict, m, sections.KindCoverLetter, extract.Paragraphs))

	p.logger.Debug("resume parsed",
		zap.Int("sections", m.Len()),
		zap.Strings("fields", record.Fields()),
		zap.Int("jobs", len(record.WorkExperience)),
	)

	return record
}

func (p *Parser) educationEntries(m *sections.Map) []extract.Education {
	if !m.Has(sections.KindEducation) {
		return nil
	}

	if p.education == EducationParsed {
		return pick(p.dict, m, sections.KindEducation, extract.ParseEducation)
	}

	if p.profile.Education.IsZero() {
		return nil
	}
	return extract.FixedEducation(p.profile.Education)
}

func (p *Parser) stripPreface(paragraphs []string) []string {
	if len(paragraphs) == 0 {
		return nil
	}

	first := strings.ToLower(paragraphs[0])
	for _, preface := range p.prefaces {
		preface = strings.ToLower(strings.TrimSpace(preface))
		if preface == "" || !strings.HasPrefix(first, preface) {
			continue
		}
		p.logger.Debug("cover letter preface dropped", zap.String("preface", preface))
		if len(paragraphs) == 1 {
			return nil
		}
		return paragraphs[1:]
	}

	return paragraphs
}

// pick tries the kind's canonical spellings in dictionary priority order and
// returns the first non-empty extraction. Document order only matters within
// one spelling, where the map keeps the last block.
func pick[T any](dict *sections.Dictionary, m *sections.Map, kind sections.Kind, extractFn func([]string) []T) []T {
	for _, spelling := range dict.Spellings(kind) {
		block, ok := m.Get(spelling)
		if !ok {
			continue
		}
		if result := extractFn(block.Lines); len(result) > 0 {
			return result
		}
	}

	return nil
}
