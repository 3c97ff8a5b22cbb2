package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProfile is the structured log field key for the candidate profile name.
	FieldProfile = "profile"
	// FieldTemplate is the structured log field key for the document template.
	FieldTemplate = "template"
	// FieldSource is the structured log field key for where résumé text came from.
	FieldSource = "source"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the fields shared by every document build: the selected
// profile and template. Empty values are skipped.
func CommonFields(profile, template string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProfile, Value: profile},
		StringField{Key: FieldTemplate, Value: template},
	)
}

// WithCommonFields attaches the profile and template fields to the logger.
func WithCommonFields(logger *zap.Logger, profile, template string) *zap.Logger {
	return WithFields(logger, CommonFields(profile, template)...)
}
