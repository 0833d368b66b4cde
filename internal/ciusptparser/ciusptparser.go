// Package ciusptparser converts CIUS-PT electronic invoice and credit note
// documents (UBL XML) into flattened ItemTransaction records.
package ciusptparser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/joao-a-costa/ciuspt-ddl/internal/common"
	"github.com/joao-a-costa/ciuspt-ddl/internal/fileutils"
	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
	"github.com/joao-a-costa/ciuspt-ddl/internal/xmlutils"
)

var log = logrus.New()

// options holds the package-wide mapping options, configurable via the
// centralized config.
var options = DefaultOptions()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
		fileutils.SetLogger(logger)
		xmlutils.SetLogger(logger)
	}
}

// SetOptions sets the mapping options used by Parse and ParseFile
func SetOptions(opts Options) {
	options = opts
}

// Parse converts an in-memory CIUS-PT XML payload into an ItemTransaction
// using the package-wide mapping options. Each call builds a fresh record;
// no state survives between calls.
func Parse(content string) (*models.ItemTransaction, error) {
	return ParseWithOptions(content, options)
}

// ParseWithOptions converts an in-memory CIUS-PT XML payload into an
// ItemTransaction with explicit mapping options.
func ParseWithOptions(content string, opts Options) (*models.ItemTransaction, error) {
	_, _, record, err := ParseDocument(content, opts)
	return record, err
}

// ParseDocument resolves, loads and maps a payload, returning the resolved
// kind and the typed tree alongside the flattened record for callers that
// need access to the source document.
func ParseDocument(content string, opts Options) (models.DocumentKind, *models.UBLDocument, *models.ItemTransaction, error) {
	kind, err := ResolveKindFromString(content)
	if err != nil {
		return "", nil, nil, err
	}

	doc, err := LoadDocument([]byte(content), kind)
	if err != nil {
		return kind, nil, nil, err
	}

	record, err := MapDocument(doc, opts)
	if err != nil {
		return kind, doc, nil, err
	}

	log.WithFields(logrus.Fields{
		"kind":  kind,
		"lines": len(record.Details),
	}).Debug("Mapped document to ItemTransaction")

	return kind, doc, record, nil
}

// ParseFile converts a CIUS-PT XML file into an ItemTransaction. This is
// the main entry point for file-based conversion.
func ParseFile(xmlFile string) (*models.ItemTransaction, error) {
	log.WithField("file", xmlFile).Info("Parsing CIUS-PT XML file")

	content, err := fileutils.ReadFile(xmlFile)
	if err != nil {
		log.WithError(err).Error("Failed to read XML file")
		return nil, fmt.Errorf("error reading XML file: %w", err)
	}

	record, err := Parse(string(content))
	if err != nil {
		log.WithError(err).Error("Failed to parse CIUS-PT document")
		return nil, err
	}

	log.WithField("count", len(record.Details)).Info("Successfully parsed CIUS-PT file")
	return record, nil
}

// ConvertToJSON converts a CIUS-PT XML file to an ItemTransaction JSON
// file. This is a convenience function combining ParseFile and the JSON
// writer.
func ConvertToJSON(xmlFile, jsonFile string) error {
	record, err := ParseFile(xmlFile)
	if err != nil {
		return err
	}
	return common.WriteRecordToJSON(record, jsonFile)
}

// BatchConvert converts all XML files in a directory to JSON files. Files
// that fail to convert are logged and skipped; the returned count covers
// successful conversions only.
func BatchConvert(inputDir, outputDir string) (int, error) {
	log.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
	}).Info("Batch converting CIUS-PT XML files")

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	files, err := fileutils.ListXMLFiles(inputDir)
	if err != nil {
		log.WithError(err).Error("Failed to read input directory")
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	var processed int
	for _, file := range files {
		outputFile := filepath.Join(outputDir, fileutils.ReplaceExtension(filepath.Base(file), "json"))

		if err := ConvertToJSON(file, outputFile); err != nil {
			log.WithFields(logrus.Fields{
				"file":  file,
				"error": err,
			}).Warning("Failed to convert file, skipping")
			continue
		}
		processed++
	}

	log.WithField("count", processed).Info("Batch conversion completed")
	return processed, nil
}

// ValidateFormat checks if a file is a CIUS-PT Invoice or CreditNote XML
// file. It uses xmlpath to check for a recognized root and the required
// monetary total block. A file that is not well-formed XML yields false
// without an error.
func ValidateFormat(xmlFile string) (bool, error) {
	log.WithField("file", xmlFile).Info("Validating CIUS-PT format")

	if _, err := os.Stat(xmlFile); err != nil {
		log.WithError(err).Error("XML file does not exist")
		return false, fmt.Errorf("error checking XML file: %w", err)
	}

	root, err := xmlutils.LoadXMLFile(xmlFile)
	if err != nil {
		log.WithError(err).Debug("File is not valid XML")
		return false, nil
	}

	if !xmlutils.HasElement(root, xmlutils.XPathInvoiceRoot) &&
		!xmlutils.HasElement(root, xmlutils.XPathCreditNoteRoot) {
		log.Debug("Root element is neither Invoice nor CreditNote")
		return false, nil
	}

	if !xmlutils.HasElement(root, xmlutils.XPathMonetaryTotal) {
		log.Debug("Missing LegalMonetaryTotal element, not a CIUS-PT document")
		return false, nil
	}

	log.WithField("file", xmlFile).Info("File is a valid CIUS-PT XML")
	return true, nil
}
