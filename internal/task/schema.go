package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaJSON string

const schemaName = "tasks.schema.json"

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate checks the collection against the embedded JSON Schema,
// falling back to minimal structural checks if the schema cannot be
// compiled.
func (l List) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schemaResult := l.validateWithSchema()
	result.UsedSchema = schemaResult.UsedSchema
	result.Warnings = append(result.Warnings, schemaResult.Warnings...)
	if schemaResult.UsedSchema {
		if !schemaResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, schemaResult.Errors...)
		}
		return result
	}

	result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
	l.validateMinimal(result)
	return result
}

// validateMinimal performs minimal validation without JSON Schema.
func (l List) validateMinimal(result *ValidationResult) {
	seen := make(map[ID]bool, len(l))
	for i := range l {
		path := fmt.Sprintf("[%d]", i)
		if err := validateTaskMinimal(&l[i], path); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
			continue
		}
		if seen[l[i].ID] {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".id",
				Err:  fmt.Errorf("duplicate id %d", l[i].ID),
			})
		}
		seen[l[i].ID] = true
	}
}

// validateTaskMinimal performs minimal task validation.
func validateTaskMinimal(t *Task, path string) *ValidationError {
	if t.ID < 1 {
		return &ValidationError{
			Path: path + ".id",
			Err:  fmt.Errorf("must be a positive integer, got %d", t.ID),
		}
	}

	if t.Name == "" {
		return &ValidationError{
			Path: path + ".name",
			Err:  fmt.Errorf("missing required field"),
		}
	}

	if !t.Status.Valid() {
		return &ValidationError{
			Path: path + ".status",
			Err:  fmt.Errorf("invalid status %q, must be one of: todo, in-progress, done", t.Status),
		}
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return &ValidationError{
			Path: path + ".updatedAt",
			Err:  fmt.Errorf("precedes createdAt"),
		}
	}

	return nil
}

// validateWithSchema attempts JSON Schema validation against the
// embedded schema.
func (l List) validateWithSchema() *ValidationResult {
	result := &ValidationResult{
		Valid:      true,
		Errors:     make([]error, 0),
		Warnings:   make([]string, 0),
		UsedSchema: false,
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaName, strings.NewReader(schemaJSON)); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid embedded schema: %v", err))
		return result
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid embedded schema: %v", err))
		return result
	}

	result.UsedSchema = true

	// Marshal the collection back to JSON for validation
	data, err := json.Marshal(l)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to marshal tasks for validation: %w", err),
		})
		return result
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal tasks for validation: %w", err),
		})
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
