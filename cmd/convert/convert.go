// Package convert handles single document conversion commands
package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/common"
	"github.com/joao-a-costa/ciuspt-ddl/cmd/root"
	"github.com/joao-a-costa/ciuspt-ddl/internal/ciusptparser"
	internalcommon "github.com/joao-a-costa/ciuspt-ddl/internal/common"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CIUS-PT XML document to JSON",
	Long: `Convert a single CIUS-PT UBL Invoice or CreditNote XML document into a
flattened item transaction record written as indented JSON. When no output
file is given the JSON is printed to stdout.

Example:
  ciuspt-ddl convert -i invoice.xml -o invoice.json`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)

	// No output file means print to stdout
	if root.SharedFlags.Output == "" {
		printRecord(root.SharedFlags.Input)
		return
	}

	root.Log.Infof("Output JSON file: %s", root.SharedFlags.Output)
	common.ProcessFile(root.SharedFlags.Input, root.SharedFlags.Output,
		root.SharedFlags.Validate, root.GetLogrusAdapter())
	root.Log.Info("CIUS-PT to JSON conversion completed successfully!")
}

func printRecord(inputFile string) {
	if inputFile == "" {
		root.Log.Fatal("Input file must be specified")
	}

	record, err := ciusptparser.ParseFile(inputFile)
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	data, err := internalcommon.MarshalRecord(record)
	if err != nil {
		root.Log.Fatalf("Error marshaling record: %v", err)
	}
	fmt.Println(string(data))
}
