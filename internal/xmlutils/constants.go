// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

// XPath expressions used for structural checks on CIUS-PT documents.
// xmlpath matches by local name, so the cbc/cac namespace prefixes of the
// source documents do not appear here.
const (
	// Document roots
	XPathInvoiceRoot    = "/Invoice"
	XPathCreditNoteRoot = "/CreditNote"

	// Required structure
	XPathMonetaryTotal = "//LegalMonetaryTotal"
	XPathIssueDate     = "//IssueDate"

	// Line containers
	XPathInvoiceLine    = "//InvoiceLine"
	XPathCreditNoteLine = "//CreditNoteLine"
)
