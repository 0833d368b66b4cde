// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joao-a-costa/ciuspt-ddl/internal/ciusptparser"
	"github.com/joao-a-costa/ciuspt-ddl/internal/common"
	"github.com/joao-a-costa/ciuspt-ddl/internal/config"
	"github.com/joao-a-costa/ciuspt-ddl/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ciuspt-ddl",
		Short: "A CLI tool to convert CIUS-PT UBL invoices and credit notes to flattened JSON.",
		Long: `ciuspt-ddl is a CLI tool that converts CIUS-PT UBL Invoice and CreditNote
XML documents into a flattened item transaction record rendered as JSON.
It can also validate documents and export the line details as CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ciuspt-ddl!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for the parser and the writers
			ciusptparser.SetLogger(Log)
			common.SetLogger(Log)

			// Pick up mapping and output formatting from the centralized config
			cfg := config.GetGlobalConfig()
			ciusptparser.SetOptions(MappingOptions())
			common.SetIndent(cfg.JSON.Indent)
			if delim := config.GetCSVDelimiter(); delim != "" {
				Log.WithField(logging.FieldDelimiter, delim).Debug("Setting CSV delimiter from configuration")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// GetLogrusAdapter returns the shared logger wrapped in the structured
// logging interface used outside the command layer.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// MappingOptions builds the parser options from the centralized config.
func MappingOptions() ciusptparser.Options {
	return ciusptparser.Options{
		ContractReferenceSource: config.GetContractReferenceSource(),
	}
}
