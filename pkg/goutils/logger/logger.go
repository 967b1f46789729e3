/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Log level. Messages with level above current one are skipped.
type TLogLevel int32

const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

// Sets global log level, returns previous one.
func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32((*int32)(&globalLogPrinter.logLevel), int32(logLevel)))
}

// Sets global log level and returns function to restore previous one.
//
//	defer logger.SetLogLevelWithRestore(logger.LogLevelVerbose)()
func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() { SetLogLevel(old) }
}

func Error(args ...interface{}) { printIfLevel(0, LogLevelError, args...) }

func Warning(args ...interface{}) { printIfLevel(0, LogLevelWarning, args...) }

func Info(args ...interface{}) { printIfLevel(0, LogLevelInfo, args...) }

func Verbose(args ...interface{}) { printIfLevel(0, LogLevelVerbose, args...) }

func Trace(args ...interface{}) { printIfLevel(0, LogLevelTrace, args...) }

func IsError() bool { return isEnabled(LogLevelError) }

func IsWarning() bool { return isEnabled(LogLevelWarning) }

func IsInfo() bool { return isEnabled(LogLevelInfo) }

func IsVerbose() bool { return isEnabled(LogLevelVerbose) }

func IsTrace() bool { return isEnabled(LogLevelTrace) }

// Prints formatted line. Replaced in tests to capture output.
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

// Prints errors to stderr, other levels to stdout.
func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer = os.Stdout
	if level == LogLevelError {
		w = os.Stderr
	}
	fmt.Fprintln(w, line)
}
