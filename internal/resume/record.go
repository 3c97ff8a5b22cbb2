package resume

import (
	"strings"

	"github.com/spigell/hh-resume/internal/extract"
)

// Record is the structured résumé consumed by templates. Identity fields are
// always present; optional fields are nil when their section is absent and are
// then omitted from JSON and YAML.
type Record struct {
	Name            string `json:"name" yaml:"name"`
	Address         string `json:"address" yaml:"address"`
	Email           string `json:"email" yaml:"email"`
	TelegramAddress string `json:"telegram_address" yaml:"telegram_address"`

	About          []string            `json:"about me,omitempty" yaml:"about me,omitempty"`
	Skills         []string            `json:"skills,omitempty" yaml:"skills,omitempty"`
	WorkExperience []extract.Job       `json:"work experience,omitempty" yaml:"work experience,omitempty"`
	Education      []extract.Education `json:"education,omitempty" yaml:"education,omitempty"`
	CoverLetter    []string            `json:"cover letter,omitempty" yaml:"cover letter,omitempty"`
}

// CoverLetter joins cover-letter paragraphs with blank lines.
func CoverLetter(r *Record) string {
	if r == nil {
		return ""
	}
	return strings.Join(r.CoverLetter, "\n\n")
}

// Fields lists the optional keys present in the record, in record order.
func (r *Record) Fields() []string {
	fields := make([]string, 0, 5)
	if r.About != nil {
		fields = append(fields, "about me")
	}
	if r.Skills != nil {
		fields = append(fields, "skills")
	}
	if r.WorkExperience != nil {
		fields = append(fields, "work experience")
	}
	if r.Education != nil {
		fields = append(fields, "education")
	}
	if r.CoverLetter != nil {
		fields = append(fields, "cover letter")
	}
	return fields
}
