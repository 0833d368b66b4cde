package ciusptparser

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

func writeTempXML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParse(t *testing.T) {
	tx, err := Parse(sampleInvoice)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", tx.CreateDate)
	assert.Equal(t, "ORD-1", tx.ContractReferenceNumber)
	require.Len(t, tx.Details, 1)
}

func TestParseDocumentReturnsKindAndTree(t *testing.T) {
	kind, doc, tx, err := ParseDocument(sampleInvoice, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.KindInvoice, kind)
	require.NotNil(t, doc)
	assert.Equal(t, models.KindInvoice, doc.Kind)
	require.NotNil(t, doc.Invoice)
	assert.Nil(t, doc.CreditNote)
	assert.Equal(t, "INV-2024-001", doc.Invoice.ID)
	require.NotNil(t, tx)
	assert.True(t, tx.TotalTransactionAmount.Equal(decimal.RequireFromString("123.00")))

	kind, doc, _, err = ParseDocument(sampleCreditNote, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, models.KindCreditNote, kind)
	require.NotNil(t, doc.CreditNote)
	assert.Nil(t, doc.Invoice)
}

func TestParseRejectsUnrecognizedRoot(t *testing.T) {
	_, err := Parse(`<?xml version="1.0"?><DebitNote><ID>1</ID></DebitNote>`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DebitNote")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	xmlFile := writeTempXML(t, dir, "invoice.xml", sampleInvoice)

	tx, err := ParseFile(xmlFile)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", tx.CreateDate)
	require.NotNil(t, tx.DeferredPaymentDate)
	assert.Equal(t, "2024-02-10", *tx.DeferredPaymentDate)
}

func TestParseFileNotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestConvertToJSON(t *testing.T) {
	dir := t.TempDir()
	xmlFile := writeTempXML(t, dir, "invoice.xml", sampleInvoice)
	jsonFile := filepath.Join(dir, "out", "invoice.json")

	require.NoError(t, ConvertToJSON(xmlFile, jsonFile))

	data, err := os.ReadFile(jsonFile)
	require.NoError(t, err)
	payload := string(data)

	assert.Contains(t, payload, `"CreateDate": "2024-01-10"`)
	assert.Contains(t, payload, `"DeferredPaymentDate": "2024-02-10"`)
	assert.Contains(t, payload, `"PostalCode": "1000 Lisboa"`)
	assert.NotContains(t, payload, "null")
	assert.NotContains(t, payload, "TotalGlobalDiscountAmount")
	assert.True(t, strings.HasSuffix(payload, "\n"))
}

func TestConvertToJSONOmitsAbsentOptionals(t *testing.T) {
	dir := t.TempDir()
	xmlFile := writeTempXML(t, dir, "creditnote.xml", sampleCreditNote)
	jsonFile := filepath.Join(dir, "creditnote.json")

	require.NoError(t, ConvertToJSON(xmlFile, jsonFile))

	data, err := os.ReadFile(jsonFile)
	require.NoError(t, err)
	payload := string(data)

	assert.NotContains(t, payload, "DeferredPaymentDate")
	assert.NotContains(t, payload, "UnloadPlaceAddress")
	assert.Contains(t, payload, `"Details": [`)
}

func TestBatchConvert(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "converted")

	writeTempXML(t, inputDir, "a.xml", sampleInvoice)
	writeTempXML(t, inputDir, "b.xml", sampleCreditNote)
	writeTempXML(t, inputDir, "broken.xml", "<Invoice><ID>")
	writeTempXML(t, inputDir, "ignored.txt", "not xml")

	count, err := BatchConvert(inputDir, outputDir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.FileExists(t, filepath.Join(outputDir, "a.json"))
	assert.FileExists(t, filepath.Join(outputDir, "b.json"))
	assert.NoFileExists(t, filepath.Join(outputDir, "broken.json"))
	assert.NoFileExists(t, filepath.Join(outputDir, "ignored.json"))
}

func TestBatchConvertEmptyDirectory(t *testing.T) {
	count, err := BatchConvert(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()

	valid := writeTempXML(t, dir, "invoice.xml", sampleInvoice)
	ok, err := ValidateFormat(valid)
	require.NoError(t, err)
	assert.True(t, ok)

	creditNote := writeTempXML(t, dir, "creditnote.xml", sampleCreditNote)
	ok, err = ValidateFormat(creditNote)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateFormatRejectsOtherDocuments(t *testing.T) {
	dir := t.TempDir()

	other := writeTempXML(t, dir, "other.xml", `<?xml version="1.0"?><DebitNote><ID>1</ID></DebitNote>`)
	ok, err := ValidateFormat(other)
	require.NoError(t, err)
	assert.False(t, ok)

	// Recognized root but no monetary total block.
	incomplete := writeTempXML(t, dir, "incomplete.xml", `<Invoice><ID>1</ID></Invoice>`)
	ok, err = ValidateFormat(incomplete)
	require.NoError(t, err)
	assert.False(t, ok)

	notXML := writeTempXML(t, dir, "notes.xml", "just some text")
	ok, err = ValidateFormat(notXML)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateFormatMissingFile(t *testing.T) {
	ok, err := ValidateFormat(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
	assert.False(t, ok)
}
