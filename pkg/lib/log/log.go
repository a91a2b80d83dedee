// Package log has the logger the zentao SDK writes to.
//
// By default the SDK is silent. To get its logs pass a [Logger] in the SDK
// config. An adapter over log/slog only needs the format methods:
//
//	type slogLogger struct{ kv []any }
//
//	func (l slogLogger) Debugf(format string, args ...any) { slog.Debug(fmt.Sprintf(format, args...), l.kv...) }
//	func (l slogLogger) WithValues(kv log.Kv) log.Logger {
//	    for k, v := range kv {
//	        l.kv = append(l.kv, k, v)
//	    }
//	    return l
//	}
//	// Infof, Warningf, Errorf and the context methods follow the same shape.
package log

import "github.com/slok/zentao/internal/log"

// Logger is the logger the SDK writes to. Entries carry key-values set with
// WithValues, like the `svc` of the component that logs.
type Logger = log.Logger

// Kv are the key-values of a log entry.
type Kv = log.Kv

// Noop discards everything, it's the default logger of the SDK.
var Noop = log.Noop
