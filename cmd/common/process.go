// Package common contains shared functionality for command handlers
package common

import (
	"github.com/joao-a-costa/ciuspt-ddl/internal/ciusptparser"
	"github.com/joao-a-costa/ciuspt-ddl/internal/logging"
)

// ProcessFile converts a single XML document to a JSON file, optionally
// validating the format first. Errors are fatal, matching the command
// layer's fail-fast behavior.
func ProcessFile(inputFile, outputFile string, validate bool, log logging.Logger) {
	if inputFile == "" || outputFile == "" {
		log.Fatal("Input and output files must be specified")
	}

	if validate {
		log.Info("Validating format...")
		valid, err := ciusptparser.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not a CIUS-PT Invoice or CreditNote")
		}
		log.Info("Validation successful.")
	}

	if err := ciusptparser.ConvertToJSON(inputFile, outputFile); err != nil {
		log.Fatalf("Error converting to JSON: %v", err)
	}
	log.Info("Conversion completed successfully!")
}
