// Package common provides the shared output writers used by the parser
// and the commands.
package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
)

var log = logrus.New()

func init() {
	// Amounts render as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Indent is the indentation unit for JSON output; configurable via the
// centralized config.
var Indent = "  "

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// SetIndent sets the indentation unit used for JSON output
func SetIndent(indent string) {
	Indent = indent
}

// MarshalRecord renders an ItemTransaction as indented JSON. Optional
// fields holding no value are omitted entirely rather than rendered as
// null; Details is always present, as [] when the document had no lines.
func MarshalRecord(record *models.ItemTransaction) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot marshal nil record")
	}

	if record.Details == nil {
		record.Details = []models.Detail{}
	}

	data, err := json.MarshalIndent(record, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("error marshaling record to JSON: %w", err)
	}
	return data, nil
}

// WriteRecordToJSON writes an ItemTransaction to a JSON file, creating
// parent directories as needed.
func WriteRecordToJSON(record *models.ItemTransaction, jsonFile string) error {
	log.WithField("file", jsonFile).Info("Writing record to JSON file")

	data, err := MarshalRecord(record)
	if err != nil {
		log.WithError(err).Error("Failed to marshal record")
		return err
	}

	dir := filepath.Dir(jsonFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(jsonFile, append(data, '\n'), 0600); err != nil {
		log.WithError(err).Error("Failed to write JSON file")
		return fmt.Errorf("error writing JSON file: %w", err)
	}

	log.WithField("file", jsonFile).Info("Successfully wrote JSON file")
	return nil
}
