package starfield

import "log"

// EnableDebug turns on Debug and DebugWarn output. Errors are always logged.
var EnableDebug = false

// LogSink receives every log line. Hosts replace it: the browser routes it
// to the console, the terminal host to a file.
var LogSink = func(level string, args ...interface{}) {
	log.Println(append([]interface{}{level}, args...)...)
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		LogSink("log", args...)
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		LogSink("warn", args...)
	}
}

// DebugError logs an error.
func DebugError(args ...interface{}) {
	LogSink("error", args...)
}
