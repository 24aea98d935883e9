package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type LoggerImpl struct {
	mu     *sync.Mutex
	out    *logrus.Logger
	fields logrus.Fields
}

var DefaultLogger *LoggerImpl
var defaultLoggerInit sync.Once

func New() *LoggerImpl {
	l := &LoggerImpl{
		mu:  &sync.Mutex{},
		out: logrus.New(),
	}
	l.SetLevel(string(InfoLevel))
	defaultLoggerInit.Do(func() {
		DefaultLogger = l
	})
	return l
}

// decorate tags the entry with the caller position, skip frames up the stack.
func (l *LoggerImpl) decorate(skip int) *logrus.Entry {
	entry := logrus.NewEntry(l.out).WithFields(l.fields)
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return entry
	}
	path := strings.Split(file, string(os.PathSeparator))
	if len(path) > 3 {
		path = path[len(path)-3:]
	}
	position := fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line)
	return entry.WithField("position", position).WithField("func", runtime.FuncForPC(pc).Name())
}

func (l *LoggerImpl) Trace(format string, v ...interface{}) {
	l.decorate(2).Tracef(format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...interface{}) {
	l.decorate(2).Debugf(format, v...)
}

func (l *LoggerImpl) Info(format string, v ...interface{}) {
	l.decorate(2).Infof(format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...interface{}) {
	l.decorate(2).Warnf(format, v...)
}

func (l *LoggerImpl) Error(format string, v ...interface{}) {
	l.decorate(2).Errorf(format, v...)
}

func (l *LoggerImpl) WithFields(fields Fields) Logger {
	merged := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &LoggerImpl{mu: l.mu, out: l.out, fields: merged}
}

func (l *LoggerImpl) setLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.SetLevel(logrus.Level(level))
}

// SetLevel accepts trace, debug, info, warn and error. Anything else means info.
func (l *LoggerImpl) SetLevel(level string) {
	switch strings.ToLower(level) {
	case string(TraceLevel):
		l.setLevel(LevelTrace)
	case string(DebugLevel):
		l.setLevel(LevelDebug)
	case string(WarnLevel):
		l.setLevel(LevelWarn)
	case string(ErrorLevel):
		l.setLevel(LevelError)
	default:
		l.setLevel(LevelInfo)
	}
}

func (l *LoggerImpl) GetLevel() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.out.GetLevel())
}

func (l *LoggerImpl) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.SetOutput(out)
}

func (l *LoggerImpl) GetOutput() io.Writer {
	if l.out != nil && l.out.Out != nil {
		return l.out.Out
	}
	return nil
}

func (l *LoggerImpl) SetFormatter(formatter logrus.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.SetFormatter(formatter)
}
