package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/hh-resume/internal/sections"
)

// Rules holds the keyword lists behind the line classifiers.
type Rules struct {
	// MonthStems are lowercase prefixes of Russian month names.
	MonthStems []string `mapstructure:"month-stems"`
	// OrgSuffixes are legal-form tokens matched as whole words.
	OrgSuffixes []string `mapstructure:"org-suffixes"`
	// KnownCompanies are organization names matched as whole lines.
	KnownCompanies []string `mapstructure:"known-companies"`
	// RoleKeywords are lowercase substrings of job titles.
	RoleKeywords []string `mapstructure:"role-keywords"`
}

// DefaultRules returns the built-in classifier rules.
func DefaultRules() Rules {
	return Rules{
		MonthStems: []string{
			"январ", "феврал", "март", "апрел", "ма", "июн",
			"июл", "август", "сентябр", "октябр", "ноябр", "декабр",
		},
		OrgSuffixes: []string{"LLC", "LTD", "INC", "ООО", "АО", "ЗАО"},
		KnownCompanies: []string{
			"Яндекс", "Yandex", "Сбер", "СберТех", "Тинькофф", "Т-Банк", "VK", "Ozon",
			"Wildberries", "Авито", "Avito", "Лаборатория Касперского", "Kaspersky",
			"JetBrains", "EPAM", "Luxoft", "МТС", "Билайн", "МегаФон", "Ростелеком",
			"X5 Group", "Альфа-Банк", "Газпром нефть", "Positive Technologies", "Selectel",
		},
		RoleKeywords: []string{
			"developer", "разработчик", "engineer", "инженер", "programmer", "программист",
			"frontend", "front-end", "backend", "back-end", "fullstack", "full-stack",
			"lead", "тимлид", "architect", "архитектор", "devops", "analyst", "аналитик",
			"tester", "тестировщик", "manager", "менеджер", "руководитель", "director",
			"директор", "designer", "дизайнер", "стажер", "стажёр", "consultant",
			"консультант", "специалист", "administrator", "администратор", "head of",
		},
	}
}

// Merge returns rules with the extra entries appended.
func (r Rules) Merge(extra Rules) Rules {
	return Rules{
		MonthStems:     appendUnique(r.MonthStems, extra.MonthStems),
		OrgSuffixes:    appendUnique(r.OrgSuffixes, extra.OrgSuffixes),
		KnownCompanies: appendUnique(r.KnownCompanies, extra.KnownCompanies),
		RoleKeywords:   appendUnique(r.RoleKeywords, extra.RoleKeywords),
	}
}

func appendUnique(base, extra []string) []string {
	result := append([]string(nil), base...)
	seen := make(map[string]struct{}, len(base))
	for _, v := range base {
		seen[v] = struct{}{}
	}
	for _, v := range extra {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Detector classifies single lines of a work-experience section. It is
// immutable and safe for concurrent use.
type Detector struct {
	dict      *sections.Dictionary
	monthSpan *regexp.Regexp
	yearSpan  *regexp.Regexp
	orgSuffix *regexp.Regexp
	companies map[string]struct{}
	roles     []string
}

// NewDetector compiles the rules. The dictionary is used for heading checks.
func NewDetector(rules Rules, dict *sections.Dictionary) (*Detector, error) {
	if dict == nil {
		dict = sections.DefaultDictionary()
	}
	if len(rules.MonthStems) == 0 {
		return nil, fmt.Errorf("month stems are required")
	}

	month := `(?:` + alternation(rules.MonthStems) + `)\p{L}*\s+\d{4}`
	monthSpan, err := regexp.Compile(`(?i)` + month + `(?:\s+по\s+|\s*[-–—]\s*)` + month)
	if err != nil {
		return nil, fmt.Errorf("compiling month period pattern: %w", err)
	}

	d := &Detector{
		dict:      dict,
		monthSpan: monthSpan,
		yearSpan:  regexp.MustCompile(`\b\d{4}\s*[-–—]\s*\d{4}\b`),
		companies: make(map[string]struct{}, len(rules.KnownCompanies)),
	}

	if len(rules.OrgSuffixes) > 0 {
		d.orgSuffix, err = regexp.Compile(`(?i)(?:^|[^\p{L}\p{N}_])(?:` + alternation(rules.OrgSuffixes) + `)(?:$|[^\p{L}\p{N}_])`)
		if err != nil {
			return nil, fmt.Errorf("compiling organization suffix pattern: %w", err)
		}
	}

	for _, name := range rules.KnownCompanies {
		if folded := fold(name); folded != "" {
			d.companies[folded] = struct{}{}
		}
	}

	for _, kw := range rules.RoleKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			d.roles = append(d.roles, kw)
		}
	}

	return d, nil
}

// MustDetector is NewDetector for rules known to be valid.
func MustDetector(rules Rules, dict *sections.Dictionary) *Detector {
	d, err := NewDetector(rules, dict)
	if err != nil {
		panic(err)
	}
	return d
}

// IsPeriod reports whether the line holds an employment period: two month-year
// pairs joined by "по" or a dash, or a bare year range.
func (d *Detector) IsPeriod(line string) bool {
	return d.monthSpan.MatchString(line) || d.yearSpan.MatchString(line)
}

// IsCompany reports whether the line names a known organization or carries a
// legal-form suffix.
func (d *Detector) IsCompany(line string) bool {
	if _, ok := d.companies[fold(line)]; ok {
		return true
	}
	return d.orgSuffix != nil && d.orgSuffix.MatchString(line)
}

// LooksLikeRole reports whether the line contains job-title vocabulary.
func (d *Detector) LooksLikeRole(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range d.roles {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsHeading reports whether the line is a known section heading.
func (d *Detector) IsHeading(line string) bool {
	return d.dict.IsHeading(line)
}

func alternation(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(item))
	}
	return strings.Join(quoted, "|")
}

func fold(line string) string {
	return strings.Join(strings.Fields(strings.ToLower(line)), " ")
}
