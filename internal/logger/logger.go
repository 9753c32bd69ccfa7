package logger

import (
	"context"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const (
	// RequestIDKey is the gin context key and context value key for the request ID
	RequestIDKey = "request_id"
	// MemberIDKey is the gin context key for the member a request is about
	MemberIDKey = "member_id"

	requestIDCtxKey contextKey = RequestIDKey
	memberIDCtxKey  contextKey = MemberIDKey
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logger: JSON output, the given level, and
// an optional rotating log file written alongside stdout.
func Setup(level, file string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	var out io.Writer = os.Stdout
	if file != "" {
		out = io.MultiWriter(os.Stdout, newFileWriter(file))
	}
	logrus.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// SetupConsole configures the standard logger for command line use: text
// output on stderr, colored when stderr is a terminal, plus the optional
// rotating log file.
func SetupConsole(verbose bool, file string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   IsTerminal(os.Stderr),
		FullTimestamp: true,
	})

	var out io.Writer = os.Stderr
	if file != "" {
		out = io.MultiWriter(os.Stderr, newFileWriter(file))
	}
	logrus.SetOutput(out)

	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newFileWriter(file string) io.Writer {
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}
}

// ContextWithRequestID returns a copy of ctx carrying the request ID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// ContextWithMemberID returns a copy of ctx carrying the member ID
func ContextWithMemberID(ctx context.Context, memberID int) context.Context {
	return context.WithValue(ctx, memberIDCtxKey, memberID)
}

// WithContext creates a logger with request information from ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if requestID, ok := ctx.Value(requestIDCtxKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField(RequestIDKey, requestID)
	}
	if memberID, ok := ctx.Value(memberIDCtxKey).(int); ok && memberID != 0 {
		logger.Entry = logger.Entry.WithField(MemberIDKey, memberID)
	}

	return logger
}

// FromGinContext creates a logger with the request information stored on c
func FromGinContext(c *gin.Context) *Logger {
	logger := WithContext(c.Request.Context())
	if _, ok := logger.Entry.Data[RequestIDKey]; !ok {
		if requestID := c.GetString(RequestIDKey); requestID != "" {
			logger.Entry = logger.Entry.WithField(RequestIDKey, requestID)
		}
	}
	if _, ok := logger.Entry.Data[MemberIDKey]; !ok {
		if memberID := c.GetInt(MemberIDKey); memberID != 0 {
			logger.Entry = logger.Entry.WithField(MemberIDKey, memberID)
		}
	}
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Debugf logs a formatted debug message (only shown when LOG_LEVEL=debug)
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) {
	l.Entry.Info(args...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Entry.Infof(format, args...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Entry.Warnf(format, args...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Entry.Errorf(format, args...)
}
