// Package interfaces holds the contracts a host application can satisfy to
// integrate the module into its own runtime. Only logging is required today;
// everything ships with working defaults so the zero-configuration path
// stays silent rather than failing.
package interfaces

import "context"

// Logger is the leveled logging contract used throughout the module. The
// method set matches github.com/goliatone/go-logger, so hosts already using
// that package can hand their loggers over directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by name. The module requests namespaced
// loggers such as "pagemeta.catalog" and "pagemeta.http"; a provider may
// scope children per name or return one shared instance for all of them.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional Logger extension for attaching persistent
// structured fields. When a logger implements it, the returned logger must
// carry the supplied fields on every subsequent entry; callers fall back to
// inline key/value args otherwise.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
