package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	alog "github.com/apex/log"
	"github.com/pkg/errors"
)

const (
	red    = 31
	yellow = 33
	blue   = 34
	gray   = 37
)

var levelColors = [...]int{
	alog.DebugLevel: gray,
	alog.InfoLevel:  blue,
	alog.WarnLevel:  yellow,
	alog.ErrorLevel: red,
	alog.FatalLevel: red,
}

var levelNames = [...]string{
	alog.DebugLevel: "DEBUG",
	alog.InfoLevel:  "INFO",
	alog.WarnLevel:  "WARN",
	alog.ErrorLevel: "ERROR",
	alog.FatalLevel: "FATAL",
}

var (
	// Cheap guards so hot paths skip formatting when the level is off.
	LogInfo  = false
	LogDebug = false

	logg Logger = alog.Log
)

/*
LogHandler writes one line per entry: level, UTC timestamp, message and
sorted fields. Color wraps the level and field names in ANSI escapes.
*/
type LogHandler struct {
	mu     sync.Mutex
	Writer io.Writer
	Color  bool
}

func (h *LogHandler) HandleLog(e *alog.Entry) error {
	level := levelNames[e.Level]
	ts := e.Timestamp.UTC().Format(time.RFC3339Nano)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Color {
		color := levelColors[e.Level]
		fmt.Fprintf(h.Writer, "\033[%dm%6s\033[0m %s %-25s", color, level, ts, e.Message)
		for _, name := range e.Fields.Names() {
			fmt.Fprintf(h.Writer, " \033[%dm%s\033[0m=%v", color, name, e.Fields.Get(name))
		}
	} else {
		fmt.Fprintf(h.Writer, "%6s %s %-25s", level, ts, e.Message)
		for _, name := range e.Fields.Names() {
			fmt.Fprintf(h.Writer, " %s=%v", name, e.Fields.Get(name))
		}
	}

	_, err := fmt.Fprintln(h.Writer)
	return err
}

/*
InitLogger routes the process logger to stdout at the given level
("debug", "info", "warn", "error", "fatal").
*/
func InitLogger(level string) error {
	return InitLoggerTo(os.Stdout, level, true)
}

func InitLoggerTo(w io.Writer, level string, color bool) error {
	lvl, err := alog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	alog.SetHandler(&LogHandler{Writer: w, Color: color})
	alog.SetLevel(lvl)
	LogInfo = lvl <= alog.InfoLevel
	LogDebug = lvl <= alog.DebugLevel
	logg = alog.Log
	return nil
}

// Logger is the subset of apex/log used here.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	WithField(key string, value interface{}) *alog.Entry
}

func Log() Logger {
	return logg
}

func Debugf(format string, args ...interface{}) {
	if LogDebug {
		logg.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if LogInfo {
		logg.Infof(format, args...)
	}
}
