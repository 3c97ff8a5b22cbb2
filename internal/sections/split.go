package sections

import "go.uber.org/zap"

// Splitter cuts normalized lines into named sections.
type Splitter struct {
	dict   *Dictionary
	logger *zap.Logger
}

// NewSplitter creates a splitter. A nil logger disables logging.
func NewSplitter(dict *Dictionary, logger *zap.Logger) *Splitter {
	if dict == nil {
		dict = DefaultDictionary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Splitter{dict: dict, logger: logger}
}

// Split walks the lines with a single piece of state, the currently open
// heading. Lines before the first heading are discarded and unknown headings
// are plain content.
func (s *Splitter) Split(lines []string) *Map {
	result := NewMap()

	var (
		current *Heading
		buf     []string
	)

	commit := func() {
		if current == nil {
			return
		}
		if prev, ok := result.Latest(current.Kind); ok {
			s.logger.Debug("section heading repeated, earlier block replaced",
				zap.String("kind", string(current.Kind)),
				zap.String("previous", prev.Canonical),
				zap.String("heading", current.Canonical),
			)
		}
		result.Put(*current, buf)
		s.logger.Debug("section committed",
			zap.String("heading", current.Canonical),
			zap.String("kind", string(current.Kind)),
			zap.Int("lines", len(buf)),
		)
	}

	for _, line := range lines {
		if h, ok := s.dict.Match(line); ok {
			commit()
			heading := h
			current = &heading
			buf = nil
			continue
		}

		if current != nil {
			buf = append(buf, line)
		}
	}
	commit()

	return result
}

// Split is a convenience wrapper around a default Splitter.
func Split(lines []string, dict *Dictionary) *Map {
	return NewSplitter(dict, nil).Split(lines)
}
