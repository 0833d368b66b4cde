// Package batch handles batch processing of files
package batch

import (
	"github.com/spf13/cobra"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/root"
	"github.com/joao-a-costa/ciuspt-ddl/internal/ciusptparser"
	"github.com/joao-a-costa/ciuspt-ddl/internal/logging"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert XML documents from a directory",
	Long: `Batch convert all CIUS-PT XML documents in an input directory to JSON
files in an output directory. Each document is converted independently;
documents that fail to convert are logged and skipped.

Example:
  ciuspt-ddl batch -i input_dir/ -o output_dir/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	// For batch the shared flags refer to directories
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	logger := root.GetLogrusAdapter()
	logger.Info("Batch conversion requested",
		logging.Field{Key: logging.FieldInputFile, Value: inputDir},
		logging.Field{Key: logging.FieldOutputFile, Value: outputDir})

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	count, err := ciusptparser.BatchConvert(inputDir, outputDir)
	if err != nil {
		logger.Fatalf("Error during batch conversion: %v", err)
	}
	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: count})
}
