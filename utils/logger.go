package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger provides leveled printf-style logging throughout the application,
// backed by logrus.
type Logger struct {
	log *logrus.Logger
}

// compactFormatter renders entries as "[2006-01-02 15:04:05] LEVEL msg".
type compactFormatter struct{}

func (f *compactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 5 {
		level = level[:5]
	}
	msg := fmt.Sprintf("[%s] %-5s %s\n",
		entry.Time.Format("2006-01-02 15:04:05"), level, entry.Message)
	return []byte(msg), nil
}

// NewLogger creates a Logger writing to stdout at info level.
func NewLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&compactFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{log: l}
}

// SetLevel adjusts the minimum level from its string form; unknown values
// keep the info default.
func (l *Logger) SetLevel(levelStr string) {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.log.SetLevel(level)
}

func (l *Logger) Info(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log.Debugf(format, args...)
}
