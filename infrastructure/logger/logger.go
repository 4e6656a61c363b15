package logger

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// logEntry is a single formatted log message together with the level it was
// emitted at, queued for the backend goroutine to write.
type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger. All messages are tagged with the subsystem
// name and filtered by the logger's level before being handed to the
// backend. Messages emitted while the backend is not running are dropped.
type Logger struct {
	lvl       Level // lvl is read/written atomically, keep it first for alignment
	tag       string
	backend   *Backend
	writeChan chan<- logEntry
}

var (
	backendLog = NewBackend()

	subsystemsMutex sync.Mutex
	subsystems      = make(map[string]*Logger)
)

// BackendLog returns the backend all registered subsystem loggers write to.
func BackendLog() *Backend {
	return backendLog
}

// RegisterSubSystem returns the logger for the given subsystem tag,
// registering a new one on the package backend if the tag was not seen
// before. Newly registered subsystems default to the info level.
func RegisterSubSystem(subsystemTag string) *Logger {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	logger, ok := subsystems[subsystemTag]
	if !ok {
		logger = backendLog.Logger(subsystemTag)
		logger.SetLevel(LevelInfo)
		subsystems[subsystemTag] = logger
	}
	return logger
}

// SetLogLevels sets the logging level of all registered subsystems.
func SetLogLevels(level Level) {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	for _, logger := range subsystems {
		logger.SetLevel(level)
	}
}

// Level returns the current logging level of the logger.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level of the logger.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(level))
}

// Tracef formats a message according to a format specifier and writes it at
// the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debugf formats a message according to a format specifier and writes it at
// the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Infof formats a message according to a format specifier and writes it at
// the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warnf formats a message according to a format specifier and writes it at
// the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Errorf formats a message according to a format specifier and writes it at
// the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Criticalf formats a message according to a format specifier and writes it
// at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// Trace writes a message at the trace level.
func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

// Debug writes a message at the debug level.
func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

// Info writes a message at the info level.
func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

// Warn writes a message at the warn level.
func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

// Error writes a message at the error level.
func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

// Critical writes a message at the critical level.
func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.write(level, fmt.Sprintf(format, args...))
}

func (l *Logger) print(level Level, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.write(level, fmt.Sprint(args...))
}

func (l *Logger) write(level Level, message string) {
	// Until the backend runs nothing drains writeChan, so sending would
	// block the caller forever.
	if !l.backend.IsRunning() {
		return
	}
	l.writeChan <- logEntry{
		log:   formatMessage(l.backend.flag, level, l.tag, message),
		level: level,
	}
}

// formatMessage renders a single log line: timestamp, level tag, subsystem
// tag, optional callsite per the backend flags, and the message itself.
func formatMessage(flags uint32, level Level, tag string, message string) []byte {
	buf := make([]byte, 0, normalLogSize)
	t := time.Now()

	buf = append(buf, t.Format("2006-01-02 15:04:05.000")...)
	buf = append(buf, " ["...)
	buf = append(buf, level.String()...)
	buf = append(buf, "] "...)
	buf = append(buf, tag...)
	if flags&(LogFlagLongFile|LogFlagShortFile) != 0 {
		file, line := callsite(flags)
		buf = append(buf, ' ')
		buf = append(buf, file...)
		buf = append(buf, ':')
		buf = append(buf, fmt.Sprintf("%d", line)...)
	}
	buf = append(buf, ": "...)
	buf = append(buf, message...)
	buf = append(buf, '\n')
	return buf
}

// callsite returns the file name and line number of the logging callsite.
func callsite(flags uint32) (string, int) {
	// Skip formatMessage, write, print(f) and the exported level method.
	_, file, line, ok := runtime.Caller(5)
	if !ok {
		return "???", 0
	}
	if flags&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}
