package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
)

// Delimiter is the global CSV delimiter, configurable via the centralized
// config or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteDetailsToCSV writes the flattened detail lines of a document to a
// CSV file. All commands use this function to ensure consistent output.
func WriteDetailsToCSV(details []models.Detail, csvFile string) error {
	if details == nil {
		return fmt.Errorf("cannot write nil details to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(details),
	}).Info("Writing details to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := gocsv.DefaultCSVWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&details, writer); err != nil {
		log.WithError(err).Error("Failed to write CSV data")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote CSV file")
	return nil
}
