package extract

import "strings"

const inlineDash = "—"

// Shape recognizes one layout of a job header. Detect sees exactly Lines
// lines and Extract turns the same window into the header fields.
type Shape struct {
	Name    string
	Lines   int
	Detect  func(d *Detector, window []string) bool
	Extract func(window []string) Job
}

// Shape names in default priority order.
const (
	ShapeInlineDash        = "inline_dash"
	ShapeCompanyPeriodRole = "company_period_role"
	ShapeCompanyFirst      = "company_first"
	ShapeRoleFirst         = "role_first"
)

// DefaultShapes returns the job header layouts in priority order. The first
// shape that matches at a line wins.
func DefaultShapes() []Shape {
	return []Shape{
		{
			// Acme LLC — Backend Developer
			// 2019-2021
			Name:  ShapeInlineDash,
			Lines: 2,
			Detect: func(d *Detector, w []string) bool {
				company, _, ok := strings.Cut(w[0], inlineDash)
				return ok && d.IsCompany(strings.TrimSpace(company)) && d.IsPeriod(w[1])
			},
			Extract: func(w []string) Job {
				company, role, _ := strings.Cut(w[0], inlineDash)
				return Job{
					Company: strings.TrimSpace(company),
					Role:    strings.TrimSpace(role),
					Period:  strings.TrimSpace(w[1]),
				}
			},
		},
		{
			// Acme LLC
			// 2019-2021
			// Backend Developer
			Name:  ShapeCompanyPeriodRole,
			Lines: 3,
			Detect: func(d *Detector, w []string) bool {
				return d.IsCompany(w[0]) && d.IsPeriod(w[1]) && d.LooksLikeRole(w[2])
			},
			Extract: func(w []string) Job {
				return Job{Company: w[0], Period: w[1], Role: w[2]}
			},
		},
		{
			// Acme LLC
			// Backend Developer
			// 2019-2021
			Name:  ShapeCompanyFirst,
			Lines: 3,
			Detect: func(d *Detector, w []string) bool {
				return d.IsPeriod(w[2]) && (d.LooksLikeRole(w[1]) || d.IsCompany(w[0]))
			},
			Extract: func(w []string) Job {
				return Job{Company: w[0], Role: w[1], Period: w[2]}
			},
		},
		{
			// Backend Developer
			// Acme LLC
			// 2019-2021
			Name:  ShapeRoleFirst,
			Lines: 3,
			Detect: func(d *Detector, w []string) bool {
				return d.IsPeriod(w[2])
			},
			Extract: func(w []string) Job {
				return Job{Role: w[0], Company: w[1], Period: w[2]}
			},
		},
	}
}

// probe tries every shape at index i. A window containing a heading line never
// matches.
func probe(d *Detector, shapes []Shape, lines []string, i int) (Job, Shape, bool) {
	for _, shape := range shapes {
		if shape.Lines <= 0 || i+shape.Lines > len(lines) {
			continue
		}

		window := lines[i : i+shape.Lines]
		if containsHeading(d, window) {
			continue
		}

		if shape.Detect(d, window) {
			job := shape.Extract(window)
			job.Company = strings.TrimSpace(job.Company)
			job.Role = strings.TrimSpace(job.Role)
			job.Period = strings.TrimSpace(job.Period)
			return job, shape, true
		}
	}

	return Job{}, Shape{}, false
}

func containsHeading(d *Detector, window []string) bool {
	for _, line := range window {
		if d.IsHeading(line) {
			return true
		}
	}
	return false
}
