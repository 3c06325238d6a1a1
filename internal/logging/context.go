package logging

import "context"

type fieldsKey struct{}

// ContextWithFields annotates ctx with structured fields that context-aware
// loggers merge into every entry emitted under it. Fields already on the
// context are kept; new keys win on conflict.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := make(map[string]any, len(fields))
	for key, value := range ContextFields(ctx) {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns the fields attached to ctx, or nil when none are
// present. A copy is returned so callers can mutate the map without
// affecting future log entries.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	stored, ok := ctx.Value(fieldsKey{}).(map[string]any)
	if !ok || len(stored) == 0 {
		return nil
	}
	copied := make(map[string]any, len(stored))
	for key, value := range stored {
		copied[key] = value
	}
	return copied
}
