package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldKind       = "document_kind"
	FieldCount      = "count"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldDelimiter  = "delimiter"
)
