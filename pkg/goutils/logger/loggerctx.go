/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Attributes stored in context. Never changed after stored, WithContextAttrs stores a copy.
type ctxAttrs []slog.Attr

// Replaces writers of *Ctx functions. Tests only.
func SetCtxWriters(out, err io.Writer) {
	slogOut = slog.New(slog.NewTextHandler(out, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(err, ctxHandlerOpts))
}

// Returns context with attribute name=value added to attributes of ctx.
// Attribute with the same name is replaced in place, so attributes keep order of first addition.
func WithContextAttrs(ctx context.Context, name string, value any) context.Context {
	prev := attrsOf(ctx)
	attrs := make(ctxAttrs, len(prev), len(prev)+1)
	copy(attrs, prev)

	a := slog.Any(name, value)
	if i := slices.IndexFunc(attrs, func(a slog.Attr) bool { return a.Key == name }); i >= 0 {
		attrs[i] = a
	} else {
		attrs = append(attrs, a)
	}
	return context.WithValue(ctx, ctxKey{}, attrs)
}

// Returns attribute value stored by WithContextAttrs.
func ContextAttr(ctx context.Context, name string) (value any, ok bool) {
	for _, a := range attrsOf(ctx) {
		if a.Key == name {
			return a.Value.Any(), true
		}
	}
	return nil, false
}

// Functions below log message with «src» attribute followed by context attributes.

func ErrorCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelError, slog.LevelError, args...)
}

func WarningCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelWarning, slog.LevelWarn, args...)
}

func InfoCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelInfo, slog.LevelInfo, args...)
}

func VerboseCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelVerbose, slog.LevelDebug, args...)
}

func TraceCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelTrace, slog.LevelDebug-4, args...)
}

func logCtx(ctx context.Context, level TLogLevel, slogLevel slog.Level, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	out := slogOut
	if level == LogLevelError {
		out = slogErr
	}

	fn, line := getFuncName(logCtxSkipFrames)
	stored := attrsOf(ctx)
	attrs := make([]slog.Attr, 0, len(stored)+1)
	attrs = append(attrs, slog.String("src", fmt.Sprintf("%s:%d", fn, line)))
	attrs = append(attrs, stored...)
	out.LogAttrs(ctx, slogLevel, fmt.Sprint(args...), attrs...)
}

func attrsOf(ctx context.Context) ctxAttrs {
	attrs, _ := ctx.Value(ctxKey{}).(ctxAttrs)
	return attrs
}
