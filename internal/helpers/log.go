package helpers

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

// DefaultLogger writes through logrus' standard logger, so the level and
// formatter configured by the binary apply to search output as well.
var DefaultLogger Logger = logrus.StandardLogger()

type _silentLogger struct {
}

func (l *_silentLogger) Println(v ...any) {
}
func (l *_silentLogger) Printf(format string, v ...any) {
}
func (l *_silentLogger) Print(v ...any) {
}

var SilentLogger = _silentLogger{}

type _funcLogger struct {
	print func(string)
}

func FuncLogger(print func(string)) Logger {
	return &_funcLogger{print}
}

func (l *_funcLogger) Println(v ...any) {
	l.print(fmt.Sprintln(v...))
}
func (l *_funcLogger) Printf(format string, v ...any) {
	l.print(fmt.Sprintf(format, v...))
}
func (l *_funcLogger) Print(v ...any) {
	l.print(fmt.Sprint(v...))
}

// LevelLogger routes the Logger methods to a single logrus level, e.g. so
// per-move search summaries can be shown only with --trace.
type LevelLogger struct {
	Entry *logrus.Entry
	Level logrus.Level
}

var _ Logger = (*LevelLogger)(nil)

func (l *LevelLogger) Println(v ...any) {
	l.Entry.Logln(l.Level, v...)
}
func (l *LevelLogger) Printf(format string, v ...any) {
	l.Entry.Logf(l.Level, format, v...)
}
func (l *LevelLogger) Print(v ...any) {
	l.Entry.Log(l.Level, v...)
}
