package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FieldApp and FieldVersion are attached to every entry of the process logger.
const (
	FieldApp     = "app"
	FieldVersion = "version"
)

// PreviewLimit is the number of runes of résumé text shown in debug entries.
const PreviewLimit = 80

// Options configure the process logger.
type Options struct {
	JSON    bool
	Debug   bool
	App     string
	Version string
	// Output receives entries. Stderr when nil, so that documents printed to
	// stdout stay machine-readable.
	Output zapcore.WriteSyncer
}

// New builds the process logger.
func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(newEncoder(opts.JSON), out, zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))).
		With(StringFields(
			StringField{Key: FieldApp, Value: opts.App},
			StringField{Key: FieldVersion, Value: opts.Version},
		)...)
}

func newEncoder(json bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey: "step",

		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.RFC3339TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,

		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if json {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

// Preview folds résumé text into one line and cuts it to limit runes, so a
// multi-line document reads as a single log value.
func Preview(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(strings.Join(strings.Fields(text), " "))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}
