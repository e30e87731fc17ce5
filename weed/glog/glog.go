// Package glog implements the small leveled-logging surface that the rest
// of this module calls into: V-gated verbose logging plus the four
// always-on severities (Info/Warning/Error/Fatal), each with ln/f variants.
// It wraps the standard library's log.Logger rather than reimplementing
// glog's file-rotation and flag-binding machinery, which nothing here needs.
package glog

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

type severity int

const (
	infoLog severity = iota
	warningLog
	errorLog
	fatalLog
)

var severityName = [...]string{
	infoLog:    "I",
	warningLog: "W",
	errorLog:   "E",
	fatalLog:   "F",
}

// fatalNoStacks, set by the Exit-style calls, makes a fatal log exit with
// status 1 instead of 255. No goroutine dump is written either way.
var fatalNoStacks uint32

// Verbose gates a call site on the -v level. The zero value is "not enabled".
type Verbose bool

type loggingT struct {
	mu     sync.Mutex
	logger *log.Logger
	level  int32
}

var logging = &loggingT{
	logger: log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
}

// SetVerbosity sets the global -v level. Call sites guarded by V(n) with
// n > level become no-ops.
func SetVerbosity(level int) {
	atomic.StoreInt32(&logging.level, int32(level))
}

// V reports whether verbosity level n is enabled.
func V(level int) Verbose {
	return Verbose(int32(level) <= atomic.LoadInt32(&logging.level))
}

func (l *loggingT) header(s severity) string {
	return severityName[s] + ": "
}

func (l *loggingT) print(s severity, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Output(3, l.header(s)+fmt.Sprint(args...))
	if s == fatalLog {
		l.exit()
	}
}

func (l *loggingT) println(s severity, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Output(3, l.header(s)+fmt.Sprintln(args...))
	if s == fatalLog {
		l.exit()
	}
}

func (l *loggingT) printf(s severity, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Output(3, l.header(s)+fmt.Sprintf(format, args...))
	if s == fatalLog {
		l.exit()
	}
}

func (l *loggingT) printDepth(s severity, depth int, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Output(3+depth, l.header(s)+fmt.Sprint(args...))
	if s == fatalLog {
		l.exit()
	}
}

func (l *loggingT) exit() {
	if atomic.LoadUint32(&fatalNoStacks) == 0 {
		os.Exit(255)
	}
	os.Exit(1)
}

// Info, Infoln, Infof log at the INFO severity if v is enabled.
func (v Verbose) Info(args ...interface{}) {
	if v {
		logging.print(infoLog, args...)
	}
}
func (v Verbose) Infoln(args ...interface{}) {
	if v {
		logging.println(infoLog, args...)
	}
}
func (v Verbose) Infof(format string, args ...interface{}) {
	if v {
		logging.printf(infoLog, format, args...)
	}
}

func Info(args ...interface{})                 { logging.print(infoLog, args...) }
func Infoln(args ...interface{})                { logging.println(infoLog, args...) }
func Infof(format string, args ...interface{})  { logging.printf(infoLog, format, args...) }

func Warning(args ...interface{})                 { logging.print(warningLog, args...) }
func WarningDepth(depth int, args ...interface{}) { logging.printDepth(warningLog, depth, args...) }
func Warningln(args ...interface{})               { logging.println(warningLog, args...) }
func Warningf(format string, args ...interface{}) { logging.printf(warningLog, format, args...) }

func Error(args ...interface{})                 { logging.print(errorLog, args...) }
func ErrorDepth(depth int, args ...interface{}) { logging.printDepth(errorLog, depth, args...) }
func Errorln(args ...interface{})               { logging.println(errorLog, args...) }
func Errorf(format string, args ...interface{}) { logging.printf(errorLog, format, args...) }

func Fatal(args ...interface{})                 { logging.print(fatalLog, args...) }
func FatalDepth(depth int, args ...interface{}) { logging.printDepth(fatalLog, depth, args...) }
func Fatalln(args ...interface{})               { logging.println(fatalLog, args...) }
func Fatalf(format string, args ...interface{}) { logging.printf(fatalLog, format, args...) }

// Exit logs one line at the FATAL severity, then calls os.Exit(1)
// without a goroutine dump.
func Exit(args ...interface{}) {
	atomic.StoreUint32(&fatalNoStacks, 1)
	logging.print(fatalLog, args...)
}
func Exitf(format string, args ...interface{}) {
	atomic.StoreUint32(&fatalNoStacks, 1)
	logging.printf(fatalLog, format, args...)
}
