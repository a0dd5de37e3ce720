package validation

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string `json:"location,omitempty"`
	Message  string `json:"message"`
}

// PayloadValidationError surfaces validation issues with their location.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := pointer(issue.Location)
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Schema is a compiled JSON schema.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile parses a draft 2020-12 schema document.
func Compile(name string, document []byte) (*Schema, error) {
	if strings.TrimSpace(name) == "" {
		name = "schema.json"
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(document)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile is Compile for embedded schemas.
func MustCompile(name string, document []byte) *Schema {
	schema, err := Compile(name, document)
	if err != nil {
		panic(err)
	}
	return schema
}

// Validate checks a decoded JSON value (maps, slices, json.Number, ...).
func (s *Schema) Validate(payload any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(payload); err != nil {
		return &PayloadValidationError{Issues: Issues(err), Cause: err}
	}
	return nil
}

// Issues extracts validation issues from schema and ozzo validation errors.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var schemaErr *jsonschema.ValidationError
	if errors.As(err, &schemaErr) && schemaErr != nil {
		return collectSchemaIssues(schemaErr)
	}
	var fieldErrs ozzo.Errors
	if errors.As(err, &fieldErrs) {
		return collectFieldIssues("", fieldErrs)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// IsInputError reports whether err came from input validation rather than
// from storage or a missing record.
func IsInputError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSchemaValidation) {
		return true
	}
	var fieldErrs ozzo.Errors
	if errors.As(err, &fieldErrs) {
		return true
	}
	var ozzoErr ozzo.Error
	return errors.As(err, &ozzoErr)
}

func collectSchemaIssues(err *jsonschema.ValidationError) []ValidationIssue {
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

func collectFieldIssues(prefix string, errs ozzo.Errors) []ValidationIssue {
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	issues := []ValidationIssue{}
	for _, key := range keys {
		location := prefix + "/" + key
		var nested ozzo.Errors
		if errors.As(errs[key], &nested) {
			issues = append(issues, collectFieldIssues(location, nested)...)
			continue
		}
		issues = append(issues, ValidationIssue{Location: location, Message: errs[key].Error()})
	}
	return issues
}

func pointer(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return "#"
	}
	if !strings.HasPrefix(location, "#") {
		return "#" + location
	}
	return location
}
