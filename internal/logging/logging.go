package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp format of every record in the log file.
const TimeLayout = "2006-01-02 15:04:05"

const logFilePerm = 0o644

type Level string

const (
	Info    Level = "INFO"
	Warning Level = "WARNING"
	Error   Level = "ERROR"
)

// ParseLevel converts a severity name to a zap level. Matching is
// case-insensitive, "warn" is accepted for WARNING, and anything
// unrecognized (including "") is INFO.
func ParseLevel(s string) zapcore.Level {
	lvl, _ := parseSeverity(s)
	return lvl
}

// parseSeverity also reports whether s named a severity at all. "" counts as
// INFO, the default.
func parseSeverity(s string) (zapcore.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return zapcore.InfoLevel, true
	case "WARNING", "WARN":
		return zapcore.WarnLevel, true
	case "ERROR":
		return zapcore.ErrorLevel, true
	case "DEBUG":
		return zapcore.DebugLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Log writes message at level to every sink of logger. An unrecognized
// level is recorded as INFO in the file and printed uncolored.
func Log(logger *zap.SugaredLogger, message string, level Level) {
	lvl, known := parseSeverity(string(level))
	if !known {
		logger.Logw(lvl, message, neutralField)
		return
	}
	logger.Log(lvl, message)
}

// OpenLogFile opens path for appending, creating it if needed. It never truncates.
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
}

// New builds a logger that writes plain records to file and colored
// "--> message" lines to console. DEBUG lines reach the console only.
func New(file io.Writer, console io.Writer) *zap.SugaredLogger {
	return newWithConsole(file, NewConsoleCore(console, zapcore.DebugLevel))
}

func newWithConsole(file io.Writer, console zapcore.Core) *zap.SugaredLogger {
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(FileEncoderConfig()),
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	return zap.New(zapcore.NewTee(fileCore, console)).Sugar()
}

func FileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeLevel:      severityEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func severityEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == zapcore.WarnLevel {
		enc.AppendString(string(Warning))
		return
	}
	enc.AppendString(l.CapitalString())
}
