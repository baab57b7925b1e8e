package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ConsolePrefix = "--> "

const neutralKey = "console.neutral"

// neutralField marks an entry for the neutral console style. Encoders skip it,
// so it never shows up in the file.
var neutralField = zap.Field{Key: neutralKey, Type: zapcore.SkipType}

func hasNeutral(fields []zapcore.Field) bool {
	for _, f := range fields {
		if f.Key == neutralKey && f.Type == zapcore.SkipType {
			return true
		}
	}
	return false
}

type consoleStyles struct {
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	neutral lipgloss.Style
}

func newConsoleStyles(r *lipgloss.Renderer) consoleStyles {
	return consoleStyles{
		info:    r.NewStyle().Foreground(lipgloss.Color("2")), // green
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		err:     r.NewStyle().Foreground(lipgloss.Color("1")), // red
		neutral: r.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

func (s consoleStyles) forLevel(l zapcore.Level) lipgloss.Style {
	switch l {
	case zapcore.InfoLevel:
		return s.info
	case zapcore.WarnLevel:
		return s.warn
	case zapcore.ErrorLevel:
		return s.err
	default:
		return s.neutral
	}
}

// ConsoleCore is a zapcore.Core that prints only the message of each entry,
// colored by level. Structured fields are not rendered on the console.
type ConsoleCore struct {
	zapcore.LevelEnabler
	out    zapcore.WriteSyncer
	styles consoleStyles
}

// NewConsoleCore colors output only when w is a terminal.
func NewConsoleCore(w io.Writer, enab zapcore.LevelEnabler) *ConsoleCore {
	return &ConsoleCore{
		LevelEnabler: enab,
		out:          zapcore.Lock(zapcore.AddSync(w)),
		styles:       newConsoleStyles(lipgloss.NewRenderer(w)),
	}
}

func (c *ConsoleCore) With(_ []zapcore.Field) zapcore.Core {
	return c
}

func (c *ConsoleCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *ConsoleCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	style := c.styles.forLevel(ent.Level)
	if hasNeutral(fields) {
		style = c.styles.neutral
	}

	line := style.Render(ConsolePrefix+ent.Message) + "\n"
	_, err := c.out.Write([]byte(line))
	return err
}

func (c *ConsoleCore) Sync() error {
	return c.out.Sync()
}
