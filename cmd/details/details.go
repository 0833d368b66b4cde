// Package details handles line detail export commands
package details

import (
	"github.com/spf13/cobra"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/root"
	"github.com/joao-a-costa/ciuspt-ddl/internal/amountutils"
	"github.com/joao-a-costa/ciuspt-ddl/internal/ciusptparser"
	"github.com/joao-a-costa/ciuspt-ddl/internal/common"
	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
)

// Cmd represents the details command
var Cmd = &cobra.Command{
	Use:   "details",
	Short: "Export the line details of a CIUS-PT document to CSV",
	Long: `Parse a CIUS-PT UBL Invoice or CreditNote XML document and export its
flattened line details to a CSV file.

Example:
  ciuspt-ddl details -i invoice.xml -o details.csv`,
	Run: detailsFunc,
}

func detailsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Details command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Input and output files must be specified")
	}

	record, err := ciusptparser.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing file: %v", err)
	}

	if err := common.WriteDetailsToCSV(record.Details, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing details CSV: %v", err)
	}

	root.Log.Infof("Exported %d lines (%d discounted), total %s",
		len(record.Details), countDiscounted(record.Details),
		amountutils.FormatAmount(record.TotalTransactionAmount))
	root.Log.Info("Details export completed successfully!")
}

func countDiscounted(details []models.Detail) int {
	n := 0
	for _, d := range details {
		if d.HasDiscount() {
			n++
		}
	}
	return n
}
