package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/hh-resume/internal/sections"
)

// Education is one education record.
type Education struct {
	Institution string `json:"institution" yaml:"institution" mapstructure:"institution"`
	Period      string `json:"period" yaml:"period" mapstructure:"period"`
	Degree      string `json:"degree" yaml:"degree" mapstructure:"degree"`
}

// IsZero reports whether no field is set.
func (e Education) IsZero() bool {
	return e.Institution == "" && e.Period == "" && e.Degree == ""
}

// FixedEducation returns the configured entry. Section text is not consulted.
func FixedEducation(entry Education) []Education {
	return []Education{entry}
}

var (
	educationYearSpan = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4})`)
	educationYear     = regexp.MustCompile(`\d{4}`)
)

// ParseEducation reads an education section laid out as
//
//	Бакалавр, 2016
//	Университет
//	Направление: ...
//
// The first line gives the period, the second the institution, and the
// remaining lines (when present) replace the first line as the degree.
func ParseEducation(lines []string) []Education {
	buf := sections.NonBlank(lines)
	if len(buf) == 0 {
		return []Education{}
	}

	degreeLine := buf[0]
	entry := Education{Degree: strings.TrimSpace(degreeLine)}

	if len(buf) > 1 {
		entry.Institution = buf[1]
	}

	if m := educationYearSpan.FindStringSubmatch(degreeLine); m != nil {
		entry.Period = fmt.Sprintf("%s-%s", m[1], m[2])
	} else if y := educationYear.FindString(degreeLine); y != "" {
		entry.Period = y
	}

	if len(buf) > 2 {
		entry.Degree = strings.TrimSpace(strings.Join(buf[2:], " "))
	}

	return []Education{entry}
}
