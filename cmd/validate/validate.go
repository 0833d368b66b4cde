// Package validate handles document format validation commands
package validate

import (
	"github.com/spf13/cobra"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/root"
	"github.com/joao-a-costa/ciuspt-ddl/internal/ciusptparser"
	"github.com/joao-a-costa/ciuspt-ddl/internal/fileutils"
	"github.com/joao-a-costa/ciuspt-ddl/internal/logging"
	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
	"github.com/joao-a-costa/ciuspt-ddl/internal/xmlutils"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CIUS-PT XML document",
	Long: `Check whether a file is a CIUS-PT UBL Invoice or CreditNote XML document
without converting it.

Example:
  ciuspt-ddl validate -i invoice.xml`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	logger.Info("Validate command called")
	logger.Info("Validating file", logging.Field{Key: logging.FieldFile, Value: root.SharedFlags.Input})

	if root.SharedFlags.Input == "" {
		logger.Fatal("Input file must be specified")
	}

	valid, err := ciusptparser.ValidateFormat(root.SharedFlags.Input)
	if err != nil {
		logger.Fatalf("Error validating file: %v", err)
	}
	if !valid {
		logger.Fatal("The file is not a CIUS-PT Invoice or CreditNote")
	}

	fields, err := fileSummary(root.SharedFlags.Input)
	if err != nil {
		logger.Fatalf("Error summarizing file: %v", err)
	}
	logger.Info("The file is a valid CIUS-PT document", fields...)
}

// fileSummary builds the structured fields reported for a valid document:
// its kind, issue date and line count.
func fileSummary(filePath string) ([]logging.Field, error) {
	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	content := string(data)

	kind, err := ciusptparser.ResolveKindFromString(content)
	if err != nil {
		return nil, err
	}

	node, err := xmlutils.ParseXMLString(content)
	if err != nil {
		return nil, err
	}

	linePath := xmlutils.XPathInvoiceLine
	if kind == models.KindCreditNote {
		linePath = xmlutils.XPathCreditNoteLine
	}
	lines, err := xmlutils.ExtractFromXML(node, linePath)
	if err != nil {
		return nil, err
	}

	fields := []logging.Field{
		{Key: logging.FieldFile, Value: filePath},
		{Key: logging.FieldKind, Value: string(kind)},
		{Key: logging.FieldCount, Value: len(lines)},
	}

	issueDates, err := xmlutils.ExtractFromXML(node, xmlutils.XPathIssueDate)
	if err != nil {
		return nil, err
	}
	if len(issueDates) > 0 {
		fields = append(fields, logging.Field{Key: "issue_date", Value: issueDates[0]})
	}

	return fields, nil
}
