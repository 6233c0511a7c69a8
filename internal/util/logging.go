package util

import "log"

// Logger provides consistent logging across services
type Logger struct {
	prefix string
}

// NewLogger creates a new logger with a prefix
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// Start logs the start of a process
func (l *Logger) Start(name string) {
	log.Printf("\n"+LogStart+"\n", l.prefix+": "+name)
}

// End logs the end of a process
func (l *Logger) End(name string) {
	log.Printf(LogEnd, l.prefix+": "+name)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error) {
	log.Printf(LogError+": %s - %v\n", l.prefix, msg, err)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, err error) {
	log.Printf(LogWarning+": %s - %v\n", l.prefix, msg, err)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	log.Printf(format+"\n", args...)
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	log.Printf("✓ %s\n", msg)
}
