package extract

import (
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/sections"
)

// Job is one work-experience record.
type Job struct {
	Company string   `json:"company name" yaml:"company name"`
	Role    string   `json:"role" yaml:"role"`
	Period  string   `json:"period" yaml:"period"`
	Bullets []string `json:"experience" yaml:"experience"`
}

// Segmenter partitions a work-experience section into jobs.
type Segmenter struct {
	detector *Detector
	shapes   []Shape
	logger   *zap.Logger
}

// SegmenterOption customizes a Segmenter.
type SegmenterOption func(*Segmenter)

// WithShapes replaces the default shape list. Order defines priority.
func WithShapes(shapes []Shape) SegmenterOption {
	return func(s *Segmenter) {
		s.shapes = append([]Shape(nil), shapes...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) SegmenterOption {
	return func(s *Segmenter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSegmenter creates a segmenter with the default shapes.
func NewSegmenter(detector *Detector, opts ...SegmenterOption) *Segmenter {
	s := &Segmenter{
		detector: detector,
		shapes:   DefaultShapes(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shapes returns shape names in priority order.
func (s *Segmenter) Shapes() []string {
	names := make([]string, 0, len(s.shapes))
	for _, shape := range s.shapes {
		names = append(names, shape.Name)
	}
	return names
}

// Segment extracts jobs from section lines. Lines that start no job and
// belong to no job are skipped.
func (s *Segmenter) Segment(lines []string) []Job {
	lines = sections.NonBlank(lines)
	jobs := make([]Job, 0)

	i := 0
	for i < len(lines) {
		job, shape, ok := probe(s.detector, s.shapes, lines, i)
		if !ok {
			s.logger.Debug("line skipped", zap.Int("index", i))
			i++
			continue
		}

		s.logger.Debug("job start matched",
			zap.String("shape", shape.Name),
			zap.Int("index", i),
			zap.String("period", job.Period),
		)
		i += shape.Lines

		job.Bullets = make([]string, 0)
		for i < len(lines) {
			if s.detector.IsHeading(lines[i]) {
				break
			}
			// Only the role-first lookahead is used to end a job, so a next
			// job in another layout may take its header from this job's tail.
			if i+2 < len(lines) && s.detector.IsPeriod(lines[i+2]) {
				break
			}
			job.Bullets = append(job.Bullets, lines[i])
			i++
		}

		if job.Company == "" && job.Role == "" && len(job.Bullets) == 0 {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs
}
