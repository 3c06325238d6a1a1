package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceRequired     = errors.New("catalog: source is required")
	ErrDocumentRequired   = errors.New("catalog: document path is required")
	ErrContentDirRequired = errors.New("catalog: content directory is required")
	ErrDatabaseRequired   = errors.New("catalog: database handle is required")
	ErrPageNotFound       = errors.New("catalog: page not found")
)

// NotFoundError captures missing catalog lookups with the key that missed.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrPageNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: %s=%s", ErrPageNotFound.Error(), e.Resource, key)
	}
	return ErrPageNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrPageNotFound
}
