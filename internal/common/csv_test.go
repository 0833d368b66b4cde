package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
)

func sampleDetails() []models.Detail {
	quantity := int64(2)
	percent := decimal.RequireFromString("10")
	return []models.Detail{
		{
			ItemID:          "SKU1",
			Quantity:        &quantity,
			UnitPrice:       decimal.RequireFromString("50.00"),
			Description:     "Widget",
			DiscountPercent: &percent,
		},
		{
			ItemID:    "SKU2",
			UnitPrice: decimal.RequireFromString("30.00"),
		},
	}
}

func TestWriteDetailsToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "details.csv")

	require.NoError(t, WriteDetailsToCSV(sampleDetails(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "ItemID,Quantity,UnitPrice,Description,DiscountPercent", lines[0])
	assert.Equal(t, "SKU1,2,50,Widget,10", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "SKU2,"))
}

func TestWriteDetailsToCSVCustomDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)
	SetDelimiter(';')

	csvFile := filepath.Join(t.TempDir(), "details.csv")
	require.NoError(t, WriteDetailsToCSV(sampleDetails(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ItemID;Quantity;UnitPrice")
}

func TestWriteDetailsToCSVEmptySlice(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteDetailsToCSV([]models.Detail{}, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "ItemID,Quantity,UnitPrice,Description,DiscountPercent",
		strings.TrimSpace(string(data)))
}

func TestWriteDetailsToCSVNilDetails(t *testing.T) {
	err := WriteDetailsToCSV(nil, filepath.Join(t.TempDir(), "details.csv"))
	assert.Error(t, err)
}

func TestWriteDetailsToCSVCreatesDirectories(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "a", "b", "details.csv")
	require.NoError(t, WriteDetailsToCSV(sampleDetails(), csvFile))
	assert.FileExists(t, csvFile)
}
