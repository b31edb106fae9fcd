package core

// Logger receives progress messages from a render
type Logger interface {
	Printf(format string, args ...interface{})
}

// LoggerFunc adapts a printf-style function to Logger
type LoggerFunc func(format string, args ...interface{})

func (f LoggerFunc) Printf(format string, args ...interface{}) {
	f(format, args...)
}
