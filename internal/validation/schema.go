package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrDocumentInvalid = errors.New("catalog document validation failed")

// catalogDocumentSchema describes the persisted catalog document: a list of
// page records under a top-level "pages" key. Only structural invariants are
// enforced here; record-level validity (non-empty English title and path) is
// applied by the service layer so partially filled records degrade silently
// instead of failing the whole load.
const catalogDocumentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["pages"],
	"properties": {
		"pages": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "path", "title"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"path": {"type": "string", "pattern": "^/"},
					"title": {"$ref": "#/$defs/localized"},
					"description": {"$ref": "#/$defs/localized"},
					"icon": {"type": "string"},
					"category": {"type": "string"},
					"order": {"type": "integer"},
					"parent": {"type": "string"},
					"tags": {"type": "array", "items": {"type": "string"}},
					"relatedPages": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	},
	"$defs": {
		"localized": {
			"type": "object",
			"properties": {
				"en": {"type": "string"},
				"ar": {"type": "string"}
			}
		}
	}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func documentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("catalog.json", strings.NewReader(catalogDocumentSchema)); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("catalog.json")
	})
	return compiled, compileErr
}

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// DocumentValidationError surfaces document violations with their locations.
type DocumentValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *DocumentValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// ValidateCatalogDocument checks a decoded catalog document against the
// structural schema before record decoding begins.
func ValidateCatalogDocument(document any) error {
	schema, err := documentSchema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	if err := schema.Validate(document); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &DocumentValidationError{
				Issues: collectValidationIssues(validationErr),
				Cause:  err,
			}
		}
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	return nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
