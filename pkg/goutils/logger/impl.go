/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type ctxKey struct{}

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	const printIfLevelFrames = 3
	funcName, line := globalLogPrinter.getFuncName(skipStackFrames + printIfLevelFrames)
	PrintLine(level, globalLogPrinter.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

func getFuncName(skipStackFrames int) (funcName string, line int) {
	return globalLogPrinter.getFuncName(skipStackFrames + 1)
}

// Returns short name of function, like «pkg.Func», and line of the caller skipStackFrames frames above.
func (p *logPrinter) getFuncName(skipStackFrames int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipStackFrames)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
		if i := strings.LastIndex(funcName, "/"); i >= 0 {
			funcName = funcName[i+1:]
		}
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgPrefix string, funcName string, line int, args ...interface{}) string {
	b := strings.Builder{}
	b.WriteString(time.Now().Format(timeLayout))
	b.WriteString(" ")
	b.WriteString(msgPrefix)
	b.WriteString(fmt.Sprintf(": [%s:%d]:", funcName, line))
	if len(args) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
	}
	return b.String()
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}
