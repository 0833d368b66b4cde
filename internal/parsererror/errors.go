// Package parsererror defines the typed errors surfaced by the parsing
// pipeline. All of them are fatal for the parse call that produced them;
// optional-field absence is never reported through this package.
package parsererror

import "fmt"

// UnrecognizedDocumentTypeError reports an XML payload whose root element
// is neither Invoice nor CreditNote.
type UnrecognizedDocumentTypeError struct {
	RootName string
}

func (e *UnrecognizedDocumentTypeError) Error() string {
	if e.RootName == "" {
		return "unrecognized document type: no root element found"
	}
	return fmt.Sprintf("unrecognized document type: root element '%s' is neither Invoice nor CreditNote", e.RootName)
}

// ParseError represents an error during XML parsing
type ParseError struct {
	Stage string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse '%s': %v", e.Stage, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingStructureError reports the absence of a block the mapping rules
// treat as mandatory for the resolved document kind, e.g. the legal
// monetary total. It is never produced for optional navigation steps.
type MissingStructureError struct {
	Kind      string
	Structure string
}

func (e *MissingStructureError) Error() string {
	return fmt.Sprintf("%s document is missing required structure '%s'", e.Kind, e.Structure)
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
