package sections

import (
	"fmt"
	"strings"
)

// Kind is a canonical section kind.
type Kind string

const (
	KindAbout          Kind = "about"
	KindSkills         Kind = "skills"
	KindWorkExperience Kind = "work_experience"
	KindEducation      Kind = "education"
	KindCoverLetter    Kind = "cover_letter"
)

// Kinds lists every canonical kind in record order.
var Kinds = []Kind{KindAbout, KindSkills, KindWorkExperience, KindEducation, KindCoverLetter}

// Heading is the result of a successful heading match.
type Heading struct {
	// Canonical is the canonical spelling blocks are stored under.
	Canonical string
	Kind      Kind
}

// Dictionary maps surface spellings of section titles to canonical spellings.
// It is immutable after construction and safe for concurrent use.
type Dictionary struct {
	canonical map[string]Kind
	// priority keeps canonical spellings per kind in declaration order.
	priority map[Kind][]string
	surface  map[string]Heading
}

type canonicalSpelling struct {
	spelling string
	kind     Kind
	aliases  []string
}

var defaultSpellings = []canonicalSpelling{
	{
		spelling: "О себе",
		kind:     KindAbout,
		aliases:  []string{"Обо мне", "About me"},
	},
	{
		spelling: "Профессиональный профиль",
		kind:     KindAbout,
		aliases:  []string{"Профиль кандидата", "Краткое резюме", "Professional profile", "Summary"},
	},
	{
		spelling: "Навыки",
		kind:     KindSkills,
		aliases:  []string{"Skills", "Технические навыки", "Профессиональные навыки", "Стек технологий", "Технологии"},
	},
	{
		spelling: "Ключевые навыки",
		kind:     KindSkills,
		aliases:  []string{"Key skills", "Основные навыки"},
	},
	{
		spelling: "Дополнительная информация",
		kind:     KindSkills,
		aliases:  []string{"Additional information", "Дополнительно"},
	},
	{
		spelling: "Опыт работы",
		kind:     KindWorkExperience,
		aliases:  []string{"Work experience", "Experience", "Профессиональный опыт", "Трудовой опыт", "Места работы", "Опыт работы и проекты"},
	},
	{
		spelling: "Образование",
		kind:     KindEducation,
		aliases:  []string{"Education", "Высшее образование", "Образование и курсы"},
	},
	{
		spelling: "Сопроводительное письмо",
		kind:     KindCoverLetter,
		aliases:  []string{"Cover letter", "Мотивационное письмо"},
	},
	{
		spelling: "Короткое сопроводительное письмо",
		kind:     KindCoverLetter,
		aliases:  []string{"Краткое сопроводительное письмо", "Short cover letter"},
	},
}

// DefaultDictionary returns the built-in heading dictionary.
func DefaultDictionary() *Dictionary {
	d := &Dictionary{
		canonical: make(map[string]Kind),
		priority:  make(map[Kind][]string),
		surface:   make(map[string]Heading),
	}

	for _, c := range defaultSpellings {
		d.addCanonical(c.spelling, c.kind)
		for _, alias := range c.aliases {
			d.surface[foldHeading(alias)] = Heading{Canonical: c.spelling, Kind: c.kind}
		}
	}

	return d
}

// WithAliases returns a copy of the dictionary extended with extra surface
// spellings. Each alias must point to a known canonical spelling.
func (d *Dictionary) WithAliases(aliases map[string]string) (*Dictionary, error) {
	next := &Dictionary{
		canonical: make(map[string]Kind, len(d.canonical)),
		priority:  make(map[Kind][]string, len(d.priority)),
		surface:   make(map[string]Heading, len(d.surface)+len(aliases)),
	}
	for k, v := range d.canonical {
		next.canonical[k] = v
	}
	for k, v := range d.priority {
		next.priority[k] = append([]string(nil), v...)
	}
	for k, v := range d.surface {
		next.surface[k] = v
	}

	for alias, canonical := range aliases {
		kind, ok := next.canonical[canonical]
		if !ok {
			return nil, fmt.Errorf("heading %q refers to unknown section %q", alias, canonical)
		}
		folded := foldHeading(alias)
		if folded == "" {
			return nil, fmt.Errorf("empty heading alias for section %q", canonical)
		}
		next.surface[folded] = Heading{Canonical: canonical, Kind: kind}
	}

	return next, nil
}

func (d *Dictionary) addCanonical(spelling string, kind Kind) {
	d.canonical[spelling] = kind
	d.priority[kind] = append(d.priority[kind], spelling)
	d.surface[foldHeading(spelling)] = Heading{Canonical: spelling, Kind: kind}
}

// Match reports whether the line is a known section heading.
func (d *Dictionary) Match(line string) (Heading, bool) {
	if d == nil {
		return Heading{}, false
	}
	folded := foldHeading(line)
	if folded == "" {
		return Heading{}, false
	}
	h, ok := d.surface[folded]
	return h, ok
}

// IsHeading is a shorthand for Match that drops the heading details.
func (d *Dictionary) IsHeading(line string) bool {
	_, ok := d.Match(line)
	return ok
}

// Spellings returns canonical spellings of the kind in priority order.
func (d *Dictionary) Spellings(kind Kind) []string {
	return append([]string(nil), d.priority[kind]...)
}

// KindOf returns the kind of a canonical spelling.
func (d *Dictionary) KindOf(canonical string) (Kind, bool) {
	kind, ok := d.canonical[canonical]
	return kind, ok
}

// foldHeading lowercases the line, collapses whitespace runs and drops a
// single trailing colon.
func foldHeading(line string) string {
	folded := strings.Join(strings.Fields(strings.ToLower(line)), " ")
	folded = strings.TrimSuffix(folded, ":")
	return strings.TrimSpace(folded)
}
